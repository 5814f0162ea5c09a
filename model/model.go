// Package model defines the read-only surface of the host building model
// that the exporter consumes: levels, elements, parameter slots and vertical
// extents. The host owns all of this data; the exporter only reads it during
// a single export pass.
package model

// ID identifies a level, element or view in the host model.
type ID int64

// InvalidID is the sentinel for "no identity". Callers must treat it as
// "not known" rather than an error.
const InvalidID ID = -1

// Valid reports whether the ID refers to an actual model object.
func (id ID) Valid() bool {
	return id != InvalidID
}

// VerticalSpan is a vertical interval [Start, End] in model length units.
// It represents either an element's full extent or one segmentation result.
type VerticalSpan struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
}

// Height returns the extent of the span.
func (s VerticalSpan) Height() float64 {
	return s.End - s.Start
}

// Empty reports whether the span has no positive extent.
func (s VerticalSpan) Empty() bool {
	return s.Start >= s.End
}

// Level is a horizontal reference plane in the model. Levels flagged as
// building stories are the unit of vertical segmentation. A Level is
// immutable for the duration of an export pass.
type Level struct {
	// ID is the level's identity in the host model.
	ID ID `yaml:"id"`

	// Name is the display name of the level.
	Name string `yaml:"name"`

	// Elevation is the level's height in model length units.
	Elevation float64 `yaml:"elevation"`

	// IsBuildingStory marks the level as a primary vertical division
	// of the building.
	IsBuildingStory bool `yaml:"building_story"`

	// UpToLevelID names the level this story explicitly continues up to,
	// or InvalidID when the story carries no such override.
	UpToLevelID ID `yaml:"up_to_level"`

	// DefaultHeight is a host-supplied story height used when no
	// "continues up to" override resolves; 0 means none was supplied.
	DefaultHeight float64 `yaml:"default_height"`
}

// Kind is the closed set of element kinds the base-level resolution
// distinguishes. Kinds not listed here resolve through the generic
// level attribute only.
type Kind string

const (
	KindWall           Kind = "wall"
	KindFamilyInstance Kind = "family_instance"
	KindTruss          Kind = "truss"
	KindStair          Kind = "stair"
	KindLegacyStair    Kind = "legacy_stair"
	KindExtrusionRoof  Kind = "extrusion_roof"
	KindDuct           Kind = "duct"
	KindPipe           Kind = "pipe"
	KindCableTray      Kind = "cable_tray"
	KindConduit        Kind = "conduit"
	KindOther          Kind = "other"
)

// ExportKind classifies an element for export purposes. It decides which
// property-set tables apply and whether the element participates in
// level-based splitting.
type ExportKind string

const (
	ExportWall        ExportKind = "wall"
	ExportColumn      ExportKind = "column"
	ExportBeam        ExportKind = "beam"
	ExportSlab        ExportKind = "slab"
	ExportRoof        ExportKind = "roof"
	ExportStair       ExportKind = "stair"
	ExportDuctSegment ExportKind = "duct_segment"
	ExportPipeSegment ExportKind = "pipe_segment"
	ExportGeneric     ExportKind = "generic"
)

// Parameter slots that can carry a level identity on an element. The names
// are stable identifiers into the host model's parameter table; which slots
// are consulted, and in which order, depends on the element kind.
const (
	// ParamBaseLevel is the in-place base level of a family instance.
	ParamBaseLevel = "base_level"

	// ParamScheduleLevel is the schedule-only level of a family instance.
	ParamScheduleLevel = "schedule_level"

	// ParamReferenceLevel is the reference level of family instances and
	// MEP curves (ducts, pipes, cable trays, conduits).
	ParamReferenceLevel = "reference_level"

	// ParamWallBase is the base constraint of a wall.
	ParamWallBase = "wall_base_constraint"

	// ParamTrussLevel is the reference level of a truss.
	ParamTrussLevel = "truss_reference_level"

	// ParamStairBase is the base level of a stair, including stairs in
	// the legacy format.
	ParamStairBase = "stair_base_level"

	// ParamRoofBase is the base reference level of an extrusion roof.
	ParamRoofBase = "roof_base_level"
)

// Element is one exportable model object. Implementations are supplied by
// the host model; all methods are reads against already-fetched state and
// never fail.
type Element interface {
	// ID returns the element's identity.
	ID() ID

	// Name returns the element's display name.
	Name() string

	// Category returns the host category name, e.g. "Walls".
	Category() string

	// Kind returns the element kind used for base-level resolution.
	Kind() Kind

	// ExportKind returns the export classification of the element.
	ExportKind() ExportKind

	// LevelID returns the element's generic level attribute. It may be
	// InvalidID, which callers must treat as "no base level known".
	LevelID() ID

	// ParamLevelID returns the level identity held by the named parameter
	// slot. The second result is false when the slot is absent.
	ParamLevelID(slot string) (ID, bool)

	// ViewID returns the owning view for view-specific elements and
	// InvalidID for model elements.
	ViewID() ID

	// SuperInstanceID returns the top-level containing instance for
	// nested family instances, or InvalidID.
	SuperInstanceID() ID

	// BoundingSpan returns the element's vertical bounding extent. The
	// second result is false when the element has no bounding geometry.
	BoundingSpan() (VerticalSpan, bool)
}

// Model is the host-model query surface. Enumeration methods may fail if
// the underlying model becomes unreadable; such failures are fatal for the
// current operation and propagate unmodified.
type Model interface {
	// Levels enumerates all levels in the model, in no particular order.
	Levels() ([]Level, error)

	// Elements enumerates all exportable elements.
	Elements() ([]Element, error)

	// Element fetches a single element by identity.
	Element(id ID) (Element, bool)

	// ViewLevel returns the level associated with a 2-D view, for
	// resolving view-specific elements.
	ViewLevel(viewID ID) (ID, bool)
}
