package psets

import "github.com/stratobim/ifcexport/model"

// FieldType is the value type of one described field.
type FieldType string

const (
	// TypeLabel is a short identifying string.
	TypeLabel FieldType = "label"

	// TypeText is free-form text.
	TypeText FieldType = "text"

	// TypeBoolean is a true/false value.
	TypeBoolean FieldType = "boolean"

	// TypeInteger is a whole number.
	TypeInteger FieldType = "integer"

	// TypeReal is a unitless real number.
	TypeReal FieldType = "real"

	// TypeLength is a real number in model length units.
	TypeLength FieldType = "length"

	// TypeArea is a real number in model area units.
	TypeArea FieldType = "area"

	// TypeVolume is a real number in model volume units.
	TypeVolume FieldType = "volume"

	// TypeCount is a non-negative tally.
	TypeCount FieldType = "count"
)

// Class distinguishes property sets from quantity sets.
type Class string

const (
	// ClassPropertySet marks descriptive property definitions.
	ClassPropertySet Class = "pset"

	// ClassQuantitySet marks base-quantity definitions.
	ClassQuantitySet Class = "qto"
)

// Field is one named slot in a definition.
type Field struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type"`
}

// Definition describes one property or quantity set: its name, the export
// kinds it applies to, and its fields in declaration order.
type Definition struct {
	Name        string             `yaml:"name"`
	Class       Class              `yaml:"class"`
	Description string             `yaml:"description"`
	EntityTypes []model.ExportKind `yaml:"entity_types"`
	Fields      []Field            `yaml:"fields"`
}

// AppliesTo reports whether the definition covers the given export kind.
func (d Definition) AppliesTo(kind model.ExportKind) bool {
	for _, t := range d.EntityTypes {
		if t == kind {
			return true
		}
	}
	return false
}
