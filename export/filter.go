package export

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/stratobim/ifcexport/model"
)

// Filter selects elements for export by matching their category name
// against include and exclude glob patterns. An empty include list admits
// every category; exclusions apply afterwards.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter validates the patterns and builds a filter.
func NewFilter(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid category pattern %q", pattern)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Admit reports whether an element passes the filter.
func (f *Filter) Admit(e model.Element) bool {
	category := e.Category()
	if len(f.include) > 0 && !matchAny(f.include, category) {
		return false
	}
	return !matchAny(f.exclude, category)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are pre-validated; Match only errors on bad patterns.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
