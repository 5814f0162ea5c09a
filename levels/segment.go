package levels

import (
	"math"

	"github.com/stratobim/ifcexport/model"
)

// ExtensionTolerance is the boundary snapping slack, 10 cm expressed in
// model length units. All elevation and height comparisons use it as a
// symmetric band; equality is never tested exactly.
const ExtensionTolerance = 0.1312

// almostZero reports whether a height is zero within the tolerance band.
// Zero-height stories extend indefinitely upward from their elevation.
func almostZero(x float64) bool {
	return math.Abs(x) < ExtensionTolerance
}

// SplitsByLevel reports whether elements of the given export kind are
// decomposed at building-story boundaries.
func SplitsByLevel(kind model.ExportKind) bool {
	switch kind {
	case model.ExportColumn, model.ExportWall, model.ExportDuctSegment:
		return true
	}
	return false
}

// Segmenter computes, for one element's vertical extent, the ordered list
// of (story, sub-range) fragments covering it. It owns no state beyond the
// per-pass cache it was given, so one Segmenter serves all elements of a
// pass.
type Segmenter struct {
	model   model.Model
	catalog *Catalog
	cache   *Cache
	split   bool
}

// NewSegmenter creates a segmenter over the given model and per-pass cache.
// split mirrors the "split elements by level" export option, read once per
// pass.
func NewSegmenter(m model.Model, cache *Cache, split bool) *Segmenter {
	return &Segmenter{
		model:   m,
		catalog: cache.catalog,
		cache:   cache,
		split:   split,
	}
}

// SegmentElement segments an element over its own bounding extent. Elements
// without bounding geometry produce no fragments.
func (s *Segmenter) SegmentElement(e model.Element) ([]model.ID, []model.VerticalSpan) {
	span, ok := e.BoundingSpan()
	if !ok {
		return nil, nil
	}
	return s.Segment(e, span)
}

// Segment walks the building stories in elevation order and emits the
// fragments of zSpan, paired by index: fragment i covers ranges[i] and is
// tagged with storyIDs[i]. Fragments are mutually non-overlapping and
// ordered by increasing start, each with strictly positive width.
//
// Splitting disabled, a non-splittable export kind, or an empty span all
// yield two empty sequences.
func (s *Segmenter) Segment(e model.Element, zSpan model.VerticalSpan) ([]model.ID, []model.VerticalSpan) {
	if !s.split || !SplitsByLevel(e.ExportKind()) || zSpan.Empty() {
		return nil, nil
	}

	firstLevelID := ResolveBaseLevel(s.model, e)
	// No resolvable base level: start from the first catalog entry.
	foundFirst := !firstLevelID.Valid()

	var (
		storyIDs []model.ID
		ranges   []model.VerticalSpan
		// skipToNext carries an explicit "continues up to level X"
		// override across iterations: while set, stories other than X
		// are covered by an earlier fragment and are skipped.
		skipToNext = model.InvalidID
	)

	for _, storyID := range s.cache.StoriesByElevation() {
		if !foundFirst {
			if storyID != firstLevelID {
				continue
			}
			foundFirst = true
		}
		if skipToNext.Valid() && storyID != skipToNext {
			continue
		}

		info, ok := s.levelInfo(storyID)
		if !ok {
			continue
		}

		// Span ends before this story starts.
		if zSpan.End < info.Elevation+ExtensionTolerance {
			continue
		}

		height := info.HeightToNextLevel
		skipToNext = info.NextLevelID
		storyTop := info.Elevation + height

		// Span starts above this story's band.
		if !almostZero(height) && zSpan.Start > storyTop-ExtensionTolerance {
			continue
		}

		startBelow := zSpan.Start < info.Elevation-ExtensionTolerance
		endAbove := !almostZero(height) && zSpan.End > storyTop+ExtensionTolerance

		if !startBelow && !endAbove {
			// The story's band contains the rest of the span: emit it
			// unclipped (it is within tolerance of the band) and stop.
			last := zSpan
			if n := len(ranges); n > 0 && ranges[n-1].End > last.Start {
				last.Start = ranges[n-1].End
			}
			if !last.Empty() {
				storyIDs = append(storyIDs, storyID)
				ranges = append(ranges, last)
			}
			break
		}

		cur := zSpan
		if startBelow {
			cur.Start = info.Elevation
		}
		if endAbove {
			cur.End = storyTop
		}
		if n := len(ranges); n > 0 {
			// A candidate that would not advance past the previous
			// fragment is a pathological configuration; drop it and
			// keep the partial output valid.
			if ranges[n-1].End >= cur.End-ExtensionTolerance {
				continue
			}
			if cur.Start < ranges[n-1].End {
				cur.Start = ranges[n-1].End
			}
		}
		storyIDs = append(storyIDs, storyID)
		ranges = append(ranges, cur)
	}

	return storyIDs, ranges
}

// levelInfo returns the cached record for a story, computing and
// registering it on first need. Stories unknown to the catalog resolve to
// nothing and are skipped by the caller.
func (s *Segmenter) levelInfo(levelID model.ID) (LevelInfo, bool) {
	if info, ok := s.cache.LevelInfo(levelID); ok {
		return info, true
	}
	lvl, ok := s.catalog.Level(levelID)
	if !ok {
		return LevelInfo{}, false
	}
	nextID, height := s.heightToNextLevel(lvl)
	s.cache.Register(levelID, nextID, height)
	return s.cache.LevelInfo(levelID)
}

// heightToNextLevel derives a story's height. An explicit "continues up to"
// override naming a building story strictly above wins; otherwise the
// host-supplied default height applies, or 0 when none was supplied.
func (s *Segmenter) heightToNextLevel(lvl model.Level) (model.ID, float64) {
	if lvl.UpToLevelID.Valid() {
		if up, ok := s.catalog.Level(lvl.UpToLevelID); ok &&
			up.IsBuildingStory && up.Elevation > lvl.Elevation {
			return up.ID, up.Elevation - lvl.Elevation
		}
	}
	if lvl.DefaultHeight > 0 {
		return model.InvalidID, lvl.DefaultHeight
	}
	return model.InvalidID, 0
}
