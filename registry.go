package stateful

import (
	"fmt"
	"sort"
	"sync"
)

// SurfaceFactory creates a surface of the given pixel size.
// Factories are registered via RegisterSurface and called by NewSurface.
type SurfaceFactory func(width, height int) (Surface, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	surfaces   = make(map[string]SurfaceFactory)
)

// RegisterSurface registers a surface factory with the given name.
// This function is typically called from init() in surface packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    stateful.RegisterSurface("gg", func(w, h int) (stateful.Surface, error) {
//	        return ggsurface.New(w, h)
//	    })
//	}
//
// RegisterSurface panics if factory is nil or a surface with the same name
// is already registered.
func RegisterSurface(name string, factory SurfaceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("stateful: RegisterSurface factory is nil")
	}
	if _, dup := surfaces[name]; dup {
		panic("stateful: RegisterSurface called twice for " + name)
	}
	surfaces[name] = factory
}

// UnregisterSurface removes a surface from the registry.
// This is primarily useful for testing. Unknown names are a no-op.
func UnregisterSurface(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(surfaces, name)
}

// NewSurface creates a surface by registered name.
//
//	import _ "github.com/gogpu/stateful/ggsurface" // registers "gg"
//
//	s, err := stateful.NewSurface("gg", 800, 600)
//
// The error message includes a hint about forgotten imports.
func NewSurface(name string, width, height int) (Surface, error) {
	registryMu.RLock()
	factory, ok := surfaces[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("stateful: unknown surface %q (forgotten import?)", name)
	}
	s, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("stateful: create surface %q: %w", name, err)
	}
	return s, nil
}

// MustSurface is like NewSurface but panics on error.
func MustSurface(name string, width, height int) Surface {
	s, err := NewSurface(name, width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// Surfaces returns the registered surface names in sorted order.
func Surfaces() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
