// Package route implements spec.md component I: the route registry. A
// `route /path … end` block is stored but never executed at definition
// time (spec.md section 4.8) — only the HTTP adapter later runs its body,
// once per request, against a fresh scope.
package route

import (
	"sort"
	"sync"

	"github.com/badrhassa/exo/internal/value"
)

// Registry maps a registered path to its captured body lines.
type Registry struct {
	mu    sync.RWMutex
	paths map[string][]value.Line
	order []string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{paths: make(map[string][]value.Line)}
}

// Register stores body under path, overwriting any prior definition of
// the same path (last `route` block for a given path wins, matching a
// file executed top to bottom).
func (r *Registry) Register(path string, body []value.Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.paths[path]; !exists {
		r.order = append(r.order, path)
	}
	r.paths[path] = body
}

// Lookup returns the body registered for path, if any.
func (r *Registry) Lookup(path string) ([]value.Line, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.paths[path]
	return b, ok
}

// Paths returns every registered path, sorted, for the 404 index page
// (spec.md section 6.4).
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}
