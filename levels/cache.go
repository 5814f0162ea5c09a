package levels

import (
	"sync"

	"github.com/stratobim/ifcexport/model"
)

// LevelInfo is the derived metadata for one level, created the first time
// the level participates in segmentation.
type LevelInfo struct {
	// Elevation is copied from the level at registration.
	Elevation float64

	// HeightToNextLevel is the story height, >= 0 once registered.
	HeightToNextLevel float64

	// NextLevelID is the level this story continues up to, or InvalidID.
	NextLevelID model.ID
}

// Cache holds the LevelInfo records for one export pass. Registration is
// idempotent with first-writer-wins semantics: every element sharing a level
// must observe the same height within a pass, so a value once recorded is
// authoritative and repeated registrations confirm rather than overwrite.
//
// A Cache is created at the start of a pass and discarded (or Reset) before
// the next. Lookups and registrations may interleave across per-element
// workers; the mutex keeps Register atomic under real parallelism.
type Cache struct {
	mu      sync.RWMutex
	infos   map[model.ID]LevelInfo
	catalog *Catalog
}

// NewCache creates an empty cache over the given catalog.
func NewCache(catalog *Catalog) *Cache {
	return &Cache{
		infos:   make(map[model.ID]LevelInfo),
		catalog: catalog,
	}
}

// Register inserts the LevelInfo for a level, or confirms the existing one.
// If an entry already exists its recorded height stays authoritative, even
// when the new height differs. Levels unknown to the catalog are ignored,
// since no elevation can be recorded for them.
func (c *Cache) Register(levelID, nextLevelID model.ID, height float64) {
	lvl, ok := c.catalog.Level(levelID)
	if !ok {
		return
	}
	if height < 0 {
		height = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.infos[levelID]; exists {
		return
	}
	c.infos[levelID] = LevelInfo{
		Elevation:         lvl.Elevation,
		HeightToNextLevel: height,
		NextLevelID:       nextLevelID,
	}
}

// FindHeight returns the cached height for a level. The second result is
// false while the height is not yet known; no value is ever guessed.
func (c *Cache) FindHeight(levelID model.ID) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.infos[levelID]
	if !ok {
		return 0, false
	}
	return info.HeightToNextLevel, true
}

// FindNextLevel returns the cached next-level identity for a level.
func (c *Cache) FindNextLevel(levelID model.ID) (model.ID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.infos[levelID]
	if !ok {
		return model.InvalidID, false
	}
	return info.NextLevelID, true
}

// LevelInfo returns the full cached record for a level.
func (c *Cache) LevelInfo(levelID model.ID) (LevelInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.infos[levelID]
	return info, ok
}

// StoriesByElevation returns the building-story identities in catalog
// order. The engine treats the result as read-only.
func (c *Cache) StoriesByElevation() []model.ID {
	return c.catalog.BuildingStoriesByElevation()
}

// Catalog returns the catalog this cache was built over.
func (c *Cache) Catalog() *Catalog {
	return c.catalog
}

// Reset discards all records at a pass boundary.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = make(map[model.ID]LevelInfo)
}
