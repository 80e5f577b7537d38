package shortcut

import (
	"iter"
	"slices"
	"sort"
)

// Registry holds the active, deduplicated shortcuts.
// It is not safe for concurrent use; it is only touched from the UI goroutine.
type Registry struct {
	items []Shortcut
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Upsert replaces any entry with the same combo and appends s.
// The registry is not re-sorted until Commit.
func (r *Registry) Upsert(s Shortcut) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Combo == s.Combo {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	r.items = append(r.items, s)
}

// Remove drops every entry matching combo.
func (r *Registry) Remove(combo string) {
	kept := r.items[:0]
	for _, s := range r.items {
		if s.Combo != combo {
			kept = append(kept, s)
		}
	}
	clear(r.items[len(kept):])
	r.items = kept
}

// Commit sorts the registry in place and returns a snapshot of it.
func (r *Registry) Commit() []Shortcut {
	sort.SliceStable(r.items, func(i, j int) bool {
		return Less(r.items[i], r.items[j])
	})
	return slices.Clone(r.items)
}

// All yields the current entries in registry order. Unlike the slices
// returned by Commit and FilterByGroup, a held *Registry always reads the
// latest content, so views keep the registry and range over All when they
// render.
func (r *Registry) All() iter.Seq[Shortcut] {
	return func(yield func(Shortcut) bool) {
		for _, s := range r.items {
			if !yield(s) {
				return
			}
		}
	}
}

// FilterByGroup returns a snapshot of the shortcuts in group, or of every
// shortcut when group is empty.
func (r *Registry) FilterByGroup(group string) []Shortcut {
	if group == "" {
		return slices.Clone(r.items)
	}
	var out []Shortcut
	for _, s := range r.items {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of active shortcuts.
func (r *Registry) Len() int {
	return len(r.items)
}
