package ugc

import (
	"maps"
	"slices"
)

// Definition is the named, typed schema for a structure id. It is only
// read during mapping derivation and never mutated by the engine.
type Definition struct {
	ID      string
	Name    string
	Content *Instance
}

// Slots returns the definition's field list.
func (d *Definition) Slots() []Slot {
	if d == nil || d.Content == nil {
		return nil
	}

	return d.Content.Fields
}

// KeyAt returns the display key of the field at index i, or "".
func (d *Definition) KeyAt(i int) string {
	slots := d.Slots()
	if i < 0 || i >= len(slots) {
		return ""
	}

	return slots[i].Key
}

// Registry is a flat id-indexed table of structure definitions.
// Definitions reference each other by id only, so they may be added in
// any order; lookups are resolved when a mapping is derived.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry(defs ...*Definition) *Registry {
	r := &Registry{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		r.Put(d)
	}

	return r
}

// Put adds a definition, replacing any prior definition with the same id.
func (r *Registry) Put(def *Definition) {
	if def == nil {
		return
	}

	r.defs[def.ID] = def
}

// Get returns the definition for id. A nil registry holds nothing.
func (r *Registry) Get(id string) (*Definition, bool) {
	if r == nil || id == "" {
		return nil, false
	}

	def, ok := r.defs[id]

	return def, ok
}

// Has returns true if a definition with the given id exists.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Remove deletes the definition for id.
func (r *Registry) Remove(id string) {
	delete(r.defs, id)
}

// IDs returns all definition ids in sorted order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(r.defs))
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.defs)
}
