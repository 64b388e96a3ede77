package config

import (
	"fmt"
	"io/fs"
	"log"
	"sync"
)

// ComboRegistry holds the validated combo tables by name. Lookups hand out
// shared pointers; a reload swaps in new tables without touching the old
// ones, so actions already in progress finish on the table they started with.
type ComboRegistry struct {
	mu     sync.RWMutex
	fsys   fs.FS
	specs  map[string]*ComboSpec
	names  []string
	reload int
}

// NewComboRegistry loads every combo table in fsys.
func NewComboRegistry(fsys fs.FS) (*ComboRegistry, error) {
	specs, names, err := LoadAllCombos(fsys)
	if err != nil {
		return nil, err
	}
	return &ComboRegistry{fsys: fsys, specs: specs, names: names}, nil
}

// Lookup returns the table for the named combo.
func (r *ComboRegistry) Lookup(name string) (*ComboSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// MustLookup is Lookup for names known to be registered.
func (r *ComboRegistry) MustLookup(name string) *ComboSpec {
	spec, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("combos: unknown combo %q", name))
	}
	return spec
}

// Names returns the registered combo names in sorted order.
func (r *ComboRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Generation counts successful reloads.
func (r *ComboRegistry) Generation() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reload
}

// Reload re-reads every table. On any error the current tables stay active.
func (r *ComboRegistry) Reload() error {
	specs, names, err := LoadAllCombos(r.fsys)
	if err != nil {
		return fmt.Errorf("combos: reload: %w", err)
	}

	r.mu.Lock()
	r.specs = specs
	r.names = names
	r.reload++
	r.mu.Unlock()

	log.Printf("[combos] Reloaded %d combo tables", len(names))
	return nil
}
