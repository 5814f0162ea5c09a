package export

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratobim/ifcexport/model"
)

const testSnapshot = `
levels:
  - id: 1
    name: "Level 1"
    elevation: 0
    building_story: true
    up_to_level: 2
  - id: 2
    name: "Level 2"
    elevation: 10
    building_story: true
elements:
  - id: 100
    name: "W-100"
    category: "Walls"
    kind: wall
    export_kind: wall
    params:
      wall_base_constraint: 1
    bounds: {start: -1, end: 15}
  - id: 101
    name: "F-101"
    category: "Furniture"
    kind: other
    export_kind: generic
    bounds: {start: 0, end: 1}
  - id: 102
    name: "C-102"
    category: "Structural Columns"
    kind: family_instance
    export_kind: column
    params:
      base_level: 1
    bounds: {start: 0, end: 9}
`

func loadTestModel(t *testing.T) model.Model {
	t.Helper()
	snapshot, err := model.ParseSnapshot([]byte(testSnapshot))
	require.NoError(t, err)
	return snapshot
}

func TestExporterRunSplitsByLevel(t *testing.T) {
	exporter, err := NewExporter(loadTestModel(t), Options{
		SplitByLevel: true,
		Profile:      ProfileStandard,
	})
	require.NoError(t, err)

	records, err := exporter.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Records come back ordered by element identity.
	wall := records[0]
	assert.Equal(t, model.ID(100), wall.ElementID)
	require.Len(t, wall.Fragments, 2)
	assert.Equal(t, model.ID(1), wall.Fragments[0].LevelID)
	assert.Equal(t, "Level 1", wall.Fragments[0].LevelName)
	assert.Equal(t, model.VerticalSpan{Start: 0, End: 10}, wall.Fragments[0].Span)
	assert.Equal(t, model.VerticalSpan{Start: 10, End: 15}, wall.Fragments[1].Span)

	// Generic elements carry no fragments.
	assert.Empty(t, records[1].Fragments)

	// The column fits inside Level 1's band.
	column := records[2]
	require.Len(t, column.Fragments, 1)
	assert.Equal(t, model.VerticalSpan{Start: 0, End: 9}, column.Fragments[0].Span)

	assert.Contains(t, wall.PropertySets, "Pset_WallCommon")
	assert.Contains(t, wall.Quantities, "Qto_WallBaseQuantities")
	assert.NotContains(t, wall.PropertySets, "COBie_Component")
}

func TestExporterRunSplitDisabled(t *testing.T) {
	exporter, err := NewExporter(loadTestModel(t), Options{Profile: ProfileMinimal})
	require.NoError(t, err)

	records, err := exporter.Run(context.Background())
	require.NoError(t, err)
	for _, record := range records {
		assert.Empty(t, record.Fragments)
		assert.Empty(t, record.PropertySets)
		assert.Empty(t, record.Quantities)
	}
}

func TestExporterCOBieProfile(t *testing.T) {
	exporter, err := NewExporter(loadTestModel(t), Options{Profile: ProfileCOBie})
	require.NoError(t, err)

	records, err := exporter.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, records[0].PropertySets, "COBie_Component")
	assert.Contains(t, records[0].PropertySets, "COBie_Type")
}

func TestExporterCategoryFilter(t *testing.T) {
	exporter, err := NewExporter(loadTestModel(t), Options{
		SplitByLevel: true,
		Profile:      ProfileStandard,
		Include:      []string{"Walls", "Structural *"},
	})
	require.NoError(t, err)

	records, err := exporter.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.ID(100), records[0].ElementID)
	assert.Equal(t, model.ID(102), records[1].ElementID)
}

func TestExporterParallelMatchesSerial(t *testing.T) {
	serial, err := NewExporter(loadTestModel(t), Options{SplitByLevel: true, Profile: ProfileStandard})
	require.NoError(t, err)
	parallel, err := NewExporter(loadTestModel(t), Options{SplitByLevel: true, Profile: ProfileStandard, Workers: 8})
	require.NoError(t, err)

	a, err := serial.Run(context.Background())
	require.NoError(t, err)
	b, err := parallel.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGUIDForElementStable(t *testing.T) {
	a := GUIDForElement(100)
	b := GUIDForElement(100)
	c := GUIDForElement(101)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 22)
	for _, ch := range a {
		assert.Contains(t, guidChars, string(ch))
	}
}

func TestSPFWriterOutput(t *testing.T) {
	writer := &SPFWriter{schema: "IFC4"}
	out, err := writer.Write([]EntityRecord{{
		GUID:         "0123456789ABCDEFGHIJKL",
		ElementID:    100,
		Name:         "Wall 'A'",
		Category:     "Walls",
		ExportKind:   model.ExportWall,
		PropertySets: []string{"Pset_WallCommon"},
		Fragments: []Fragment{
			{LevelID: 1, LevelName: "Level 1", Span: model.VerticalSpan{Start: 0, End: 10}},
		},
	}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "ISO-10303-21;"))
	assert.Contains(t, out, "#1=ENTITY('0123456789ABCDEFGHIJKL','Wall ''A''','Walls','wall');")
	assert.Contains(t, out, "#2=PROPERTYSET('Pset_WallCommon',#1);")
	assert.Contains(t, out, "#3=LEVELFRAGMENT(#1,'Level 1',0,10);")
	assert.True(t, strings.HasSuffix(out, "END-ISO-10303-21;\n"))
}

func TestJSONWriterRoundTrips(t *testing.T) {
	writer := &JSONWriter{}
	out, err := writer.Write([]EntityRecord{{GUID: "g", ElementID: 1, ExportKind: model.ExportWall}})
	require.NoError(t, err)
	assert.Contains(t, out, `"guid": "g"`)
}
