package psets

import (
	"fmt"
	"strings"

	"github.com/stratobim/ifcexport/model"
)

// Schedule is a named tabular view in the host model whose columns become
// fields of a custom property set.
type Schedule struct {
	// Name is the schedule title, e.g. "Door Hardware".
	Name string

	// EntityTypes are the export kinds the schedule reports on.
	EntityTypes []model.ExportKind

	// Columns are the column headings in schedule order.
	Columns []ScheduleColumn
}

// ScheduleColumn is one column of a schedule.
type ScheduleColumn struct {
	Heading string
	Type    FieldType
}

// FromSchedule converts a schedule into a custom property-set definition.
// The set is named "Pset_Schedule_<title>" with spaces collapsed; columns
// with no declared type default to text.
func FromSchedule(s Schedule) (Definition, error) {
	if s.Name == "" {
		return Definition{}, fmt.Errorf("schedule has no name")
	}
	if len(s.Columns) == 0 {
		return Definition{}, fmt.Errorf("schedule %s has no columns", s.Name)
	}

	fields := make([]Field, 0, len(s.Columns))
	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		heading := strings.TrimSpace(col.Heading)
		if heading == "" || seen[heading] {
			continue
		}
		seen[heading] = true
		ft := col.Type
		if ft == "" {
			ft = TypeText
		}
		fields = append(fields, Field{Name: heading, Type: ft})
	}
	if len(fields) == 0 {
		return Definition{}, fmt.Errorf("schedule %s has no usable columns", s.Name)
	}

	kinds := s.EntityTypes
	if len(kinds) == 0 {
		kinds = []model.ExportKind{model.ExportGeneric}
	}

	return Definition{
		Name:        "Pset_Schedule_" + strings.ReplaceAll(s.Name, " ", ""),
		Class:       ClassPropertySet,
		Description: "Derived from schedule " + s.Name,
		EntityTypes: kinds,
		Fields:      fields,
	}, nil
}
