package views

import (
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/tui/ui"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"⌨\uFE0F", "⌨"},
		{"👍\U0001F3FB", "👍"},
		{"a\u200Db", "ab"},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newRegistry(list ...shortcut.Shortcut) *shortcut.Registry {
	r := shortcut.NewRegistry()
	for _, s := range list {
		r.Upsert(s)
	}
	r.Commit()
	return r
}

func TestHelpViewGroups(t *testing.T) {
	r := newRegistry(
		shortcut.Shortcut{Combo: "g c", Description: "Go to contacts", Group: "Navigation"},
		shortcut.Shortcut{Combo: "g i", Description: "Go to inbox", Group: "Navigation"},
		shortcut.Shortcut{Combo: "shift+k", Description: "Move up"},
	)
	hv := NewHelpView(ui.DefaultTheme(), keyfmt.New(), r)
	hv.Refresh()

	text := hv.GetText(true)
	for _, want := range []string{"Navigation", "Go to contacts", "Other", " ⇧+k ", " g   i "} {
		if !strings.Contains(text, want) {
			t.Errorf("help text missing %q:\n%s", want, text)
		}
	}
	if strings.Count(text, "Navigation") != 1 {
		t.Errorf("group heading repeated:\n%s", text)
	}
}

func TestHelpViewReadsRegistryOnRefresh(t *testing.T) {
	r := newRegistry(shortcut.Shortcut{Combo: "a", Description: "first"})
	hv := NewHelpView(ui.DefaultTheme(), keyfmt.New(), r)
	hv.Refresh()

	r.Remove("a")
	r.Upsert(shortcut.Shortcut{Combo: "b", Description: "second"})
	hv.Refresh()

	text := hv.GetText(true)
	if strings.Contains(text, "first") || !strings.Contains(text, "second") {
		t.Errorf("help text = %q, want only the current registry", text)
	}
}

func TestComposerSend(t *testing.T) {
	c := NewComposer()
	var sent []string
	c.SetOnSend(func(text string) { sent = append(sent, text) })

	c.SetText("   ")
	c.Send()
	c.SetText(" hello ")
	c.Send()

	if len(sent) != 1 || sent[0] != "hello" {
		t.Errorf("sent = %v, want [hello]", sent)
	}
	if c.GetText() != "" {
		t.Errorf("text after send = %q, want empty", c.GetText())
	}
}

func TestListViewWraps(t *testing.T) {
	lv := NewListView(ui.DefaultTheme(), "Inbox")
	lv.SetItems([]string{"a", "b", "c"})

	lv.Prev()
	if got := lv.Selected(); got != "c" {
		t.Errorf("Selected() after Prev = %q, want c", got)
	}
	lv.Next()
	if got := lv.Selected(); got != "a" {
		t.Errorf("Selected() after Next = %q, want a", got)
	}
}

func TestStatusBarFlashExpires(t *testing.T) {
	sb := NewStatusBar(ui.DefaultTheme())
	now := time.Unix(1700000000, 0)
	sb.now = func() time.Time { return now }

	sb.SetPage("inbox")
	sb.Flash("event_goToInbox", time.Second)
	if !strings.Contains(sb.Text(), "event_goToInbox") {
		t.Errorf("Text() = %q, want flash", sb.Text())
	}

	now = now.Add(2 * time.Second)
	sb.SetActive(3)
	if strings.Contains(sb.Text(), "event_goToInbox") {
		t.Errorf("Text() = %q, flash should have expired", sb.Text())
	}
	if !strings.Contains(sb.Text(), "3 shortcuts") {
		t.Errorf("Text() = %q, want active count", sb.Text())
	}
}
