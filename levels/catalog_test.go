package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratobim/ifcexport/model"
)

func TestCatalogOrdersByElevation(t *testing.T) {
	m := &fakeModel{levels: []model.Level{
		story(3, "Roof", 30),
		story(1, "Ground", 0),
		story(2, "First", 10),
	}}

	catalog, err := NewCatalog(m)
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 3)
	assert.Equal(t, model.ID(1), all[0].ID)
	assert.Equal(t, model.ID(2), all[1].ID)
	assert.Equal(t, model.ID(3), all[2].ID)
}

func TestCatalogTieBreaksByID(t *testing.T) {
	// Two levels at the same elevation order by ascending ID, keeping the
	// catalog order total and deterministic.
	m := &fakeModel{levels: []model.Level{
		story(7, "Mezzanine B", 5),
		story(4, "Mezzanine A", 5),
		story(1, "Ground", 0),
	}}

	catalog, err := NewCatalog(m)
	require.NoError(t, err)

	ids := catalog.BuildingStoriesByElevation()
	assert.Equal(t, []model.ID{1, 4, 7}, ids)
}

func TestCatalogFiltersNonStories(t *testing.T) {
	ref := model.Level{ID: 5, Name: "T.O. Parapet", Elevation: 12, UpToLevelID: model.InvalidID}
	m := &fakeModel{levels: []model.Level{story(1, "Ground", 0), ref, story(2, "First", 10)}}

	catalog, err := NewCatalog(m)
	require.NoError(t, err)

	assert.Equal(t, []model.ID{1, 2}, catalog.BuildingStoriesByElevation())
	// Non-story levels still resolve through the catalog.
	_, ok := catalog.Level(5)
	assert.True(t, ok)
}

func TestCatalogLookup(t *testing.T) {
	m := &fakeModel{levels: []model.Level{story(1, "Ground", 0)}}
	catalog, err := NewCatalog(m)
	require.NoError(t, err)

	lvl, ok := catalog.Level(1)
	require.True(t, ok)
	assert.Equal(t, "Ground", lvl.Name)

	_, ok = catalog.Level(99)
	assert.False(t, ok)
}

func TestCatalogPropagatesModelFailure(t *testing.T) {
	m := &fakeModel{levelsErr: errModelUnreadable}

	_, err := NewCatalog(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, errModelUnreadable)
}
