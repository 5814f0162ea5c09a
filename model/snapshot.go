package model

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Snapshot is a self-contained Model loaded from a YAML document. It backs
// the CLI and tests; a live host adapter would implement Model directly.
type Snapshot struct {
	LevelList   []Level        `yaml:"levels"`
	ElementList []ElementData  `yaml:"elements"`
	Views       map[ID]ID      `yaml:"views"`
	Schedules   []ScheduleData `yaml:"schedules"`

	byID map[ID]*ElementData
}

// ScheduleData is a named tabular view carried in a snapshot; schedules can
// be exported as custom property sets.
type ScheduleData struct {
	Name        string               `yaml:"name"`
	EntityTypes []ExportKind         `yaml:"entity_types"`
	Columns     []ScheduleColumnData `yaml:"columns"`
}

// ScheduleColumnData is one column of a snapshot schedule.
type ScheduleColumnData struct {
	Heading string `yaml:"heading"`
	Type    string `yaml:"type"`
}

// ElementData is the serialized form of one element in a snapshot.
type ElementData struct {
	ElemID        ID              `yaml:"id"`
	ElemName      string          `yaml:"name"`
	ElemCategory  string          `yaml:"category"`
	ElemKind      Kind            `yaml:"kind"`
	Export        ExportKind      `yaml:"export_kind"`
	Level         ID              `yaml:"level"`
	View          ID              `yaml:"view"`
	SuperInstance ID              `yaml:"super_instance"`
	Params        map[string]ID   `yaml:"params"`
	Bounds        *VerticalSpan   `yaml:"bounds"`
}

// UnmarshalYAML fills identity fields with InvalidID before decoding, so
// omitted level/view/super-instance slots read as "none" rather than 0.
func (e *ElementData) UnmarshalYAML(value *yaml.Node) error {
	type raw ElementData
	out := raw{
		Level:         InvalidID,
		View:          InvalidID,
		SuperInstance: InvalidID,
	}
	if err := value.Decode(&out); err != nil {
		return err
	}
	*e = ElementData(out)
	return nil
}

var _ Element = (*ElementData)(nil)

func (e *ElementData) ID() ID                 { return e.ElemID }
func (e *ElementData) Name() string           { return e.ElemName }
func (e *ElementData) Category() string       { return e.ElemCategory }
func (e *ElementData) Kind() Kind             { return e.ElemKind }
func (e *ElementData) ExportKind() ExportKind { return e.Export }
func (e *ElementData) LevelID() ID            { return e.Level }
func (e *ElementData) ViewID() ID             { return e.View }
func (e *ElementData) SuperInstanceID() ID    { return e.SuperInstance }

func (e *ElementData) ParamLevelID(slot string) (ID, bool) {
	id, ok := e.Params[slot]
	return id, ok
}

func (e *ElementData) BoundingSpan() (VerticalSpan, bool) {
	if e.Bounds == nil {
		return VerticalSpan{}, false
	}
	return *e.Bounds, true
}

var _ Model = (*Snapshot)(nil)

// Levels returns all levels in the snapshot.
func (s *Snapshot) Levels() ([]Level, error) {
	return s.LevelList, nil
}

// Elements returns all elements in the snapshot, ordered by identity so
// export passes are deterministic.
func (s *Snapshot) Elements() ([]Element, error) {
	out := make([]Element, 0, len(s.ElementList))
	for i := range s.ElementList {
		out = append(out, &s.ElementList[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Element fetches one element by identity.
func (s *Snapshot) Element(id ID) (Element, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// ViewLevel returns the level mapped to a view, if any.
func (s *Snapshot) ViewLevel(viewID ID) (ID, bool) {
	id, ok := s.Views[viewID]
	return id, ok
}

// Validate checks snapshot consistency: unique identities and level
// references that resolve within the snapshot.
func (s *Snapshot) Validate() error {
	levelIDs := make(map[ID]bool, len(s.LevelList))
	for _, lvl := range s.LevelList {
		if !lvl.ID.Valid() {
			return fmt.Errorf("level %q has no id", lvl.Name)
		}
		if levelIDs[lvl.ID] {
			return fmt.Errorf("duplicate level id %d", lvl.ID)
		}
		levelIDs[lvl.ID] = true
	}
	seen := make(map[ID]bool, len(s.ElementList))
	for i := range s.ElementList {
		e := &s.ElementList[i]
		if !e.ElemID.Valid() {
			return fmt.Errorf("element %q has no id", e.ElemName)
		}
		if seen[e.ElemID] {
			return fmt.Errorf("duplicate element id %d", e.ElemID)
		}
		seen[e.ElemID] = true
		if e.Level.Valid() && !levelIDs[e.Level] {
			return fmt.Errorf("element %d references unknown level %d", e.ElemID, e.Level)
		}
	}
	return nil
}

// LoadSnapshot parses and validates a snapshot from a YAML file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses and validates a snapshot from YAML bytes.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	// Levels omit up_to_level more often than they carry it; 0 would be a
	// real identity, so rewrite the zero value to the sentinel.
	for i := range s.LevelList {
		if s.LevelList[i].UpToLevelID == 0 {
			s.LevelList[i].UpToLevelID = InvalidID
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.byID = make(map[ID]*ElementData, len(s.ElementList))
	for i := range s.ElementList {
		s.byID[s.ElementList[i].ElemID] = &s.ElementList[i]
	}
	return &s, nil
}
