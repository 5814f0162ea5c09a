package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/stratobim/ifcexport/levels"
	"github.com/stratobim/ifcexport/model"
	"github.com/stratobim/ifcexport/psets"
)

// Options configure one export pass.
type Options struct {
	// SplitByLevel enables decomposition of columns, walls and duct
	// segments at building-story boundaries. Read once per pass.
	SplitByLevel bool

	// Profile selects the descriptive tables attached to entities.
	Profile Profile

	// Include and Exclude are category glob patterns.
	Include []string
	Exclude []string

	// Workers bounds the per-element concurrency; 0 means serial.
	Workers int

	// Registry supplies the property-set tables; nil uses psets.Default.
	Registry *psets.Registry

	// Logger receives pass diagnostics; nil uses slog.Default.
	Logger *slog.Logger
}

// Exporter runs export passes over a model. Each pass owns a fresh level
// catalog and level-info cache, so the first-writer-wins cache contract has
// an explicit lifetime: one Run.
type Exporter struct {
	model  model.Model
	opts   Options
	filter *Filter
	logger *slog.Logger
}

// NewExporter validates the options and builds an exporter.
func NewExporter(m model.Model, opts Options) (*Exporter, error) {
	filter, err := NewFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if opts.Registry == nil {
		opts.Registry = psets.Default
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{model: m, opts: opts, filter: filter, logger: logger}, nil
}

// Run executes one export pass and returns the entity records ordered by
// element identity. Model enumeration failures abort the pass; per-element
// data absence degrades per the segmentation contract instead of failing.
func (e *Exporter) Run(ctx context.Context) ([]EntityRecord, error) {
	catalog, err := levels.NewCatalog(e.model)
	if err != nil {
		return nil, fmt.Errorf("build level catalog: %w", err)
	}
	cache := levels.NewCache(catalog)
	segmenter := levels.NewSegmenter(e.model, cache, e.opts.SplitByLevel)

	elements, err := e.model.Elements()
	if err != nil {
		return nil, fmt.Errorf("enumerate elements: %w", err)
	}

	profile := GetProfileConfig(e.opts.Profile)

	var (
		mu      sync.Mutex
		records []EntityRecord
	)
	g, ctx := errgroup.WithContext(ctx)
	if e.opts.Workers > 1 {
		g.SetLimit(e.opts.Workers)
	} else {
		g.SetLimit(1)
	}

	skipped := 0
	for _, elem := range elements {
		if !e.filter.Admit(elem) {
			skipped++
			continue
		}
		elem := elem
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record := e.buildRecord(catalog, segmenter, profile, elem)
			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ElementID < records[j].ElementID })

	e.logger.Info("export pass complete",
		"elements", len(records),
		"skipped", skipped,
		"profile", profile.Name,
		"split_by_level", e.opts.SplitByLevel)
	return records, nil
}

// buildRecord derives one element's entity record.
func (e *Exporter) buildRecord(catalog *levels.Catalog, segmenter *levels.Segmenter, profile ProfileConfig, elem model.Element) EntityRecord {
	record := EntityRecord{
		GUID:       GUIDForElement(elem.ID()),
		ElementID:  elem.ID(),
		Name:       elem.Name(),
		Category:   elem.Category(),
		ExportKind: elem.ExportKind(),
	}
	record.PropertySets, record.Quantities = definitionsFor(e.opts.Registry, profile, elem.ExportKind())

	levelIDs, ranges := segmenter.SegmentElement(elem)
	for i, levelID := range levelIDs {
		fragment := Fragment{LevelID: levelID, Span: ranges[i]}
		if lvl, ok := catalog.Level(levelID); ok {
			fragment.LevelName = lvl.Name
		}
		record.Fragments = append(record.Fragments, fragment)
	}
	if len(record.Fragments) > 0 {
		e.logger.Debug("element split by level",
			"element", elem.ID(),
			"fragments", len(record.Fragments))
	}
	return record
}
