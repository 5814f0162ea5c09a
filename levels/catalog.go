// Package levels implements the level-based vertical range segmentation that
// drives splitting of columns, walls and duct segments at building-story
// boundaries: an elevation-ordered level catalog, a per-pass cache of derived
// level metadata, base-level resolution for elements, and the segmentation
// engine itself.
package levels

import (
	"fmt"
	"sort"

	"github.com/stratobim/ifcexport/model"
)

// Catalog is an elevation-ordered view of all levels in the model, built
// once per export pass. Levels sort ascending by elevation; levels sharing
// an elevation order by ascending numeric ID, which keeps the order total
// and deterministic when floating elevations tie exactly.
type Catalog struct {
	levels []model.Level
	byID   map[model.ID]model.Level
}

// NewCatalog snapshots the model's levels into a sorted catalog. It fails
// only if the model enumeration fails.
func NewCatalog(m model.Model) (*Catalog, error) {
	raw, err := m.Levels()
	if err != nil {
		return nil, fmt.Errorf("enumerate levels: %w", err)
	}

	sorted := make([]model.Level, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Elevation != sorted[j].Elevation {
			return sorted[i].Elevation < sorted[j].Elevation
		}
		return sorted[i].ID < sorted[j].ID
	})

	byID := make(map[model.ID]model.Level, len(sorted))
	for _, lvl := range sorted {
		byID[lvl.ID] = lvl
	}
	return &Catalog{levels: sorted, byID: byID}, nil
}

// All returns every level in catalog order. The returned slice is shared;
// callers must not mutate it.
func (c *Catalog) All() []model.Level {
	return c.levels
}

// Level fetches a level by identity.
func (c *Catalog) Level(id model.ID) (model.Level, bool) {
	lvl, ok := c.byID[id]
	return lvl, ok
}

// BuildingStoriesByElevation returns the identities of all building-story
// levels, ascending by elevation with the catalog's tie-break.
func (c *Catalog) BuildingStoriesByElevation() []model.ID {
	ids := make([]model.ID, 0, len(c.levels))
	for _, lvl := range c.levels {
		if lvl.IsBuildingStory {
			ids = append(ids, lvl.ID)
		}
	}
	return ids
}
