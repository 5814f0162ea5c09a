package psets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratobim/ifcexport/model"
)

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	def, ok := Default.Lookup("Pset_WallCommon")
	require.True(t, ok)
	assert.True(t, def.AppliesTo(model.ExportWall))
	assert.False(t, def.AppliesTo(model.ExportColumn))

	_, ok = Default.Lookup("COBie_Component")
	assert.True(t, ok)
}

func TestRegistryForKind(t *testing.T) {
	defs := Default.ForKind(model.ExportWall, ClassPropertySet)
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	assert.Contains(t, names, "Pset_WallCommon")
	assert.Contains(t, names, "COBie_Component")
	assert.NotContains(t, names, "Qto_WallBaseQuantities")

	quantities := Default.ForKind(model.ExportWall, ClassQuantitySet)
	require.Len(t, quantities, 1)
	assert.Equal(t, "Qto_WallBaseQuantities", quantities[0].Name)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(PSetWallCommon))
	assert.Error(t, r.Register(PSetWallCommon))
}

func TestRegistryRejectsUnnamedOrUnclassed(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(Definition{Class: ClassPropertySet}))
	assert.Error(t, r.Register(Definition{Name: "X", Class: "bogus"}))
}

func TestRegistryLoadFile(t *testing.T) {
	content := `
- name: Pset_ProjectDoors
  entity_types: [generic]
  fields:
    - {name: HardwareGroup, type: label}
    - {name: FireExit, type: boolean}
- name: Qto_ProjectDoors
  class: qto
  entity_types: [generic]
  fields:
    - {name: Count, type: count}
`
	path := filepath.Join(t.TempDir(), "psets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := NewRegistry()
	require.NoError(t, r.LoadFile(path))

	def, ok := r.Lookup("Pset_ProjectDoors")
	require.True(t, ok)
	// Class defaults to property set when omitted.
	assert.Equal(t, ClassPropertySet, def.Class)
	require.Len(t, def.Fields, 2)
	assert.Equal(t, TypeBoolean, def.Fields[1].Type)

	qto, ok := r.Lookup("Qto_ProjectDoors")
	require.True(t, ok)
	assert.Equal(t, ClassQuantitySet, qto.Class)
}

func TestRegistryLoadFileMissing(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))
}
