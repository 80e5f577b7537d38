// Package helpkeys exposes active shortcuts as bubbles key bindings so they
// can be rendered with the bubbles help component.
package helpkeys

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
)

// Ungrouped is the heading used for shortcuts without a group.
const Ungrouped = "Other"

// Group is a titled column of bindings.
type Group struct {
	Name     string
	Bindings []key.Binding
}

// KeyMap implements help.KeyMap over a list of shortcuts.
type KeyMap struct {
	Groups []Group
}

var _ help.KeyMap = KeyMap{}

// FromShortcuts builds a KeyMap. The shortcuts are expected in registry
// order, so every group is contiguous and ungrouped shortcuts come last.
func FromShortcuts(list []shortcut.Shortcut, f *keyfmt.Formatter) KeyMap {
	if f == nil {
		f = keyfmt.New()
	}
	var km KeyMap
	for _, s := range list {
		name := s.Group
		if name == "" {
			name = Ungrouped
		}
		if n := len(km.Groups); n == 0 || km.Groups[n-1].Name != name {
			km.Groups = append(km.Groups, Group{Name: name})
		}
		g := &km.Groups[len(km.Groups)-1]
		g.Bindings = append(g.Bindings, key.NewBinding(
			key.WithKeys(s.Combo),
			key.WithHelp(f.Format(s.Combo), s.Description),
		))
	}
	return km
}

// ShortHelp returns the first binding of every group.
func (k KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.Groups))
	for _, g := range k.Groups {
		if len(g.Bindings) > 0 {
			out = append(out, g.Bindings[0])
		}
	}
	return out
}

// FullHelp returns one column per group.
func (k KeyMap) FullHelp() [][]key.Binding {
	out := make([][]key.Binding, len(k.Groups))
	for i, g := range k.Groups {
		out[i] = g.Bindings
	}
	return out
}

var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Render renders every group under its heading, one binding per line.
func Render(list []shortcut.Shortcut, f *keyfmt.Formatter, width int) string {
	km := FromShortcuts(list, f)
	m := help.New()
	m.Width = width
	m.ShowAll = true

	var sb strings.Builder
	for i, g := range km.Groups {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(headingStyle.Render(g.Name))
		sb.WriteString("\n")
		sb.WriteString(m.FullHelpView([][]key.Binding{g.Bindings}))
	}
	return sb.String()
}
