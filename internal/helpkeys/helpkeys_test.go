package helpkeys

import (
	"strings"
	"testing"

	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
)

func sample() []shortcut.Shortcut {
	r := shortcut.NewRegistry()
	r.Upsert(shortcut.Shortcut{Combo: "?", Description: "Help"})
	r.Upsert(shortcut.Shortcut{Combo: "g i", Description: "Go to inbox", Group: "Navigation"})
	r.Upsert(shortcut.Shortcut{Combo: "g c", Description: "Go to contacts", Group: "Navigation"})
	r.Upsert(shortcut.Shortcut{Combo: "shift+k", Description: "Move up", Group: "List"})
	return r.Commit()
}

func TestFromShortcutsGroups(t *testing.T) {
	km := FromShortcuts(sample(), nil)

	want := []string{"List", "Navigation", Ungrouped}
	if len(km.Groups) != len(want) {
		t.Fatalf("groups = %d, want %d", len(km.Groups), len(want))
	}
	for i, name := range want {
		if km.Groups[i].Name != name {
			t.Errorf("group[%d] = %q, want %q", i, km.Groups[i].Name, name)
		}
	}

	nav := km.Groups[1].Bindings
	if len(nav) != 2 || nav[0].Keys()[0] != "g c" || nav[1].Keys()[0] != "g i" {
		t.Errorf("navigation bindings out of order")
	}
	if h := km.Groups[0].Bindings[0].Help(); h.Key != "⇧+k" || h.Desc != "Move up" {
		t.Errorf("help = %+v, want ⇧+k / Move up", h)
	}
}

func TestShortAndFullHelp(t *testing.T) {
	km := FromShortcuts(sample(), keyfmt.New())
	if n := len(km.ShortHelp()); n != 3 {
		t.Errorf("ShortHelp len = %d, want 3", n)
	}
	full := km.FullHelp()
	if len(full) != 3 || len(full[1]) != 2 {
		t.Errorf("FullHelp shape = %d columns, want 3 with 2 navigation bindings", len(full))
	}
}

func TestRender(t *testing.T) {
	out := Render(sample(), nil, 80)
	for _, s := range []string{"Navigation", "Go to inbox", "g c", Ungrouped, "Help"} {
		if !strings.Contains(out, s) {
			t.Errorf("Render output missing %q:\n%s", s, out)
		}
	}
	if strings.Index(out, "Navigation") > strings.Index(out, Ungrouped) {
		t.Error("ungrouped shortcuts should render last")
	}
}

func TestEmpty(t *testing.T) {
	if out := Render(nil, nil, 80); out != "" {
		t.Errorf("Render(nil) = %q, want empty", out)
	}
}
