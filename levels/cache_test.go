package levels

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratobim/ifcexport/model"
)

func newTestCache(t *testing.T, lvls ...model.Level) *Cache {
	t.Helper()
	catalog, err := NewCatalog(&fakeModel{levels: lvls})
	require.NoError(t, err)
	return NewCache(catalog)
}

func TestCacheRegisterFirstWriterWins(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0), story(2, "First", 10))

	cache.Register(1, 2, 10)
	cache.Register(1, model.InvalidID, 4) // conflicting height is ignored

	height, ok := cache.FindHeight(1)
	require.True(t, ok)
	assert.Equal(t, 10.0, height)

	next, ok := cache.FindNextLevel(1)
	require.True(t, ok)
	assert.Equal(t, model.ID(2), next)
}

func TestCacheFindHeightUnknown(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0))

	// The height is never guessed: unknown is an explicit signal.
	_, ok := cache.FindHeight(1)
	assert.False(t, ok)
	_, ok = cache.FindNextLevel(1)
	assert.False(t, ok)
	_, ok = cache.LevelInfo(1)
	assert.False(t, ok)
}

func TestCacheRegisterCopiesElevation(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0), story(2, "First", 12.5))

	cache.Register(2, model.InvalidID, 0)

	info, ok := cache.LevelInfo(2)
	require.True(t, ok)
	assert.Equal(t, 12.5, info.Elevation)
	assert.Equal(t, 0.0, info.HeightToNextLevel)
	assert.Equal(t, model.InvalidID, info.NextLevelID)
}

func TestCacheRegisterUnknownLevelIgnored(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0))

	cache.Register(42, model.InvalidID, 3)

	_, ok := cache.LevelInfo(42)
	assert.False(t, ok)
}

func TestCacheRegisterClampsNegativeHeight(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0))

	cache.Register(1, model.InvalidID, -2)

	height, ok := cache.FindHeight(1)
	require.True(t, ok)
	assert.Equal(t, 0.0, height)
}

func TestCacheReset(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0))
	cache.Register(1, model.InvalidID, 5)

	cache.Reset()

	_, ok := cache.FindHeight(1)
	assert.False(t, ok)
}

func TestCacheStoriesByElevation(t *testing.T) {
	cache := newTestCache(t,
		story(2, "First", 10),
		story(1, "Ground", 0),
		model.Level{ID: 3, Name: "Datum", Elevation: 5, UpToLevelID: model.InvalidID},
	)

	assert.Equal(t, []model.ID{1, 2}, cache.StoriesByElevation())
}

func TestCacheConcurrentRegister(t *testing.T) {
	cache := newTestCache(t, story(1, "Ground", 0), story(2, "First", 10))

	// Parallel per-element workers racing to register the same level must
	// all observe one authoritative value afterwards.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		height := float64(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Register(1, 2, height)
		}()
	}
	wg.Wait()

	height, ok := cache.FindHeight(1)
	require.True(t, ok)
	assert.Contains(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, height)
}
