// Package registry provides a global registry of rule variants.
// Variants register themselves in init() functions, allowing the CLI
// to list and select them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/worldofbits/internal/config"
)

// Variant is a named set of rule overrides.
type Variant struct {
	// Name is the identifier used on the command line (e.g., "classic").
	Name string

	// Title is a short human-readable description for listings.
	Title string

	NeighborhoodRadius int
	InclusiveBoundary  bool
	ValueExponentRange int
}

// Apply overlays the variant onto rules. Spawn probability and the win
// value are left as configured.
func (v Variant) Apply(rules *config.Rules) {
	rules.NeighborhoodRadius = v.NeighborhoodRadius
	rules.InclusiveBoundary = v.InclusiveBoundary
	rules.ValueExponentRange = v.ValueExponentRange
}

// Boundary describes the reachability test of the variant.
func (v Variant) Boundary() string {
	if v.InclusiveBoundary {
		return "inclusive"
	}
	return "strict"
}

// Factory is a function that creates a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from an init() function.
// Panics if a variant with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", name))
	}

	factories[name] = f
}

// List returns all registered variants, sorted by name.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(factories))
	for _, f := range factories {
		result = append(result, f())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create returns the variant registered under name.
// Returns an error if the name is not registered.
func Create(name string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", name)
	}

	return f(), nil
}

// Exists checks if a variant with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
