package levels

import (
	"errors"

	"github.com/stratobim/ifcexport/model"
)

// fakeElement is a minimal model.Element for tests.
type fakeElement struct {
	id     model.ID
	name   string
	kind   model.Kind
	export model.ExportKind
	level  model.ID
	view   model.ID
	super  model.ID
	params map[string]model.ID
	bounds *model.VerticalSpan
}

func newFakeElement(kind model.Kind, export model.ExportKind) *fakeElement {
	return &fakeElement{
		id:     1000,
		kind:   kind,
		export: export,
		level:  model.InvalidID,
		view:   model.InvalidID,
		super:  model.InvalidID,
		params: map[string]model.ID{},
	}
}

func (e *fakeElement) ID() model.ID                 { return e.id }
func (e *fakeElement) Name() string                 { return e.name }
func (e *fakeElement) Category() string             { return "Test" }
func (e *fakeElement) Kind() model.Kind             { return e.kind }
func (e *fakeElement) ExportKind() model.ExportKind { return e.export }
func (e *fakeElement) LevelID() model.ID            { return e.level }
func (e *fakeElement) ViewID() model.ID             { return e.view }
func (e *fakeElement) SuperInstanceID() model.ID    { return e.super }

func (e *fakeElement) ParamLevelID(slot string) (model.ID, bool) {
	id, ok := e.params[slot]
	return id, ok
}

func (e *fakeElement) BoundingSpan() (model.VerticalSpan, bool) {
	if e.bounds == nil {
		return model.VerticalSpan{}, false
	}
	return *e.bounds, true
}

// fakeModel is a minimal model.Model for tests.
type fakeModel struct {
	levels    []model.Level
	elements  map[model.ID]model.Element
	views     map[model.ID]model.ID
	levelsErr error
}

func (m *fakeModel) Levels() ([]model.Level, error) {
	if m.levelsErr != nil {
		return nil, m.levelsErr
	}
	return m.levels, nil
}

func (m *fakeModel) Elements() ([]model.Element, error) {
	out := make([]model.Element, 0, len(m.elements))
	for _, e := range m.elements {
		out = append(out, e)
	}
	return out, nil
}

func (m *fakeModel) Element(id model.ID) (model.Element, bool) {
	e, ok := m.elements[id]
	return e, ok
}

func (m *fakeModel) ViewLevel(viewID model.ID) (model.ID, bool) {
	id, ok := m.views[viewID]
	return id, ok
}

var errModelUnreadable = errors.New("model unreadable")

// story builds a building-story level without an up-to override.
func story(id model.ID, name string, elevation float64) model.Level {
	return model.Level{
		ID:              id,
		Name:            name,
		Elevation:       elevation,
		IsBuildingStory: true,
		UpToLevelID:     model.InvalidID,
	}
}
