package psets

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stratobim/ifcexport/model"
)

// Registry holds definitions by name and answers which apply to an export
// kind. The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Definition
}

// Default is the package registry the built-in tables register on.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Definition)}
}

// Register adds a definition. Definition names are unique per registry.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("definition has no name")
	}
	if def.Class != ClassPropertySet && def.Class != ClassQuantitySet {
		return fmt.Errorf("definition %s: unknown class %q", def.Name, def.Class)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[def.Name]; exists {
		return fmt.Errorf("definition %s already registered", def.Name)
	}
	r.byName[def.Name] = def
	return nil
}

// MustRegister registers definitions and panics on conflict. For use from
// init() with the built-in tables.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// Lookup fetches a definition by name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byName[name]
	return def, ok
}

// ForKind returns all definitions of the given class applying to an export
// kind, sorted by name for deterministic output.
func (r *Registry) ForKind(kind model.ExportKind, class Class) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Definition
	for _, def := range r.byName {
		if def.Class == class && def.AppliesTo(kind) {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all registered definition names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinDefinitions returns copies of all built-in tables, for seeding a
// registry that also carries custom definitions.
func BuiltinDefinitions() []Definition {
	return []Definition{
		PSetWallCommon,
		PSetColumnCommon,
		PSetBeamCommon,
		PSetSlabCommon,
		PSetDuctSegmentCommon,
		PSetPipeSegmentCommon,
		QtoWallBaseQuantities,
		QtoColumnBaseQuantities,
		QtoDuctSegmentBaseQuantities,
		COBieComponent,
		COBieType,
	}
}

// LoadFile registers custom definitions from a YAML file holding a list of
// Definition documents. Definitions with no class default to property sets.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pset file: %w", err)
	}
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parse pset file %s: %w", path, err)
	}
	for _, def := range defs {
		if def.Class == "" {
			def.Class = ClassPropertySet
		}
		if err := r.Register(def); err != nil {
			return fmt.Errorf("pset file %s: %w", path, err)
		}
	}
	return nil
}
