// Package registry tracks which named types have a known domain during a
// generation run: every shape scheduled for generation plus any external
// types the manifest declares as already having generated domains.
package registry

import "sort"

// Registry is the set of named types the scanner may accept as field types.
type Registry struct {
	names map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Add records a type name as having a domain.
func (r *Registry) Add(typeName string) {
	r.names[typeName] = struct{}{}
}

// Has reports whether a type name has a known domain.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.names[typeName]
	return ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
