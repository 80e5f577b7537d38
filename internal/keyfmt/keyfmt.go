// Package keyfmt pretty prints key combos for help screens.
//
// A combo is made of molecules separated by whitespace ("g i" is two
// presses); each molecule is made of "+" joined atoms ("shift+k").
// Atoms found in the glyph map are replaced, the rest are kept as written.
package keyfmt

import (
	"strings"
)

// DefaultGlyphs maps atoms to their display glyphs.
var DefaultGlyphs = map[string]string{
	"command":   "⌘",
	"shift":     "⇧",
	"left":      "←",
	"right":     "→",
	"up":        "↑",
	"down":      "↓",
	"return":    "↩",
	"enter":     "↩",
	"backspace": "⌫",
}

// Formatter pretty prints combos. It caches molecule slices so repeated
// Molecules calls for the same combo return the same slice.
type Formatter struct {
	glyphs map[string]string
	cache  map[string][]string
}

// New creates a formatter with the default glyphs.
func New() *Formatter {
	f := &Formatter{
		glyphs: make(map[string]string, len(DefaultGlyphs)),
		cache:  make(map[string][]string),
	}
	for k, v := range DefaultGlyphs {
		f.glyphs[k] = v
	}
	return f
}

// SetKeyMap merges overrides into the glyph map. Keys are matched case
// insensitively. Cached molecules are dropped.
func (f *Formatter) SetKeyMap(overrides map[string]string) *Formatter {
	for k, v := range overrides {
		f.glyphs[strings.ToLower(k)] = v
	}
	clear(f.cache)
	return f
}

// Format returns the pretty version of combo.
func (f *Formatter) Format(combo string) string {
	return strings.Join(f.molecules(combo), " ")
}

// Molecules returns the pretty molecules of combo. The result is cached and
// shared between callers; do not modify it.
func (f *Formatter) Molecules(combo string) []string {
	if m, ok := f.cache[combo]; ok {
		return m
	}
	m := f.molecules(combo)
	f.cache[combo] = m
	return m
}

func (f *Formatter) molecules(combo string) []string {
	fields := strings.Fields(combo)
	out := make([]string, len(fields))
	for i, molecule := range fields {
		atoms := strings.Split(molecule, "+")
		for j, atom := range atoms {
			if g, ok := f.glyphs[strings.ToLower(atom)]; ok {
				atoms[j] = g
			}
		}
		out[i] = strings.Join(atoms, "+")
	}
	return out
}
