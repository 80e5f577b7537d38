package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/shorty/internal/bus"
	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/scope"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/trap"
	"github.com/rivo/tview"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := tview.NewApplication()
	traps := trap.NewManager(nil, trap.WithStopFunc(trap.InputFocused(app)))
	svc := shortcut.NewService(traps, nil)
	b := bus.New()
	root := scope.NewRoot(b, nil)
	return NewApp(app, svc, traps, root, b, keyfmt.New(), nil)
}

func combos(list []shortcut.Shortcut) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Combo)
	}
	return out
}

func press(a *App, r rune) *tcell.EventKey {
	return a.traps.Capture(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestNewAppActivatesInbox(t *testing.T) {
	a := newTestApp(t)

	got := combos(a.svc.ActiveShortcuts(""))
	want := []string{"c", "r", "j", "k", "g c", "g i", "?", "ctrl+q"}
	if !slices.Equal(got, want) {
		t.Errorf("active = %v, want %v", got, want)
	}
	if a.pages.Current() != PageInbox {
		t.Errorf("current page = %q, want %q", a.pages.Current(), PageInbox)
	}
	if a.traps.Attached() != 1 {
		t.Errorf("attached traps = %d, want 1", a.traps.Attached())
	}
}

func TestSequenceSwitchesPage(t *testing.T) {
	a := newTestApp(t)

	press(a, 'g')
	if ev := press(a, 'c'); ev != nil {
		t.Fatal("g c was not consumed")
	}
	if a.pages.Current() != PageContacts {
		t.Fatalf("current page = %q, want %q", a.pages.Current(), PageContacts)
	}

	got := a.svc.ActiveShortcuts("")
	if len(a.svc.ActiveShortcuts("Inbox")) != 0 {
		t.Errorf("inbox shortcuts still active: %v", combos(got))
	}
	if n := len(a.svc.ActiveShortcuts("Contacts")); n != 1 {
		t.Errorf("got %d contacts shortcuts, want 1", n)
	}

	before := len(a.data.Contacts())
	press(a, 'n')
	if len(a.data.Contacts()) != before+1 {
		t.Errorf("n did not add a contact")
	}
	if a.traps.Attached() != 0 {
		t.Errorf("attached traps = %d, want 0 after the inbox was torn down", a.traps.Attached())
	}
}

func TestComposerShortcutsStayInInput(t *testing.T) {
	a := newTestApp(t)

	press(a, 'c')
	if !a.composer.HasFocus() {
		t.Fatal("c did not focus the composer")
	}

	// Regular shortcuts are suppressed while typing.
	if ev := press(a, 'r'); ev == nil {
		t.Error("r was consumed inside the composer")
	}

	a.composer.SetText("hello")
	if ev := a.traps.Capture(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)); ev != nil {
		t.Error("ctrl+s was not consumed")
	}
	msgs := a.data.Messages()
	if msgs[len(msgs)-1] != "me: hello" {
		t.Errorf("last message = %q, want %q", msgs[len(msgs)-1], "me: hello")
	}

	a.traps.Capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.composer.HasFocus() {
		t.Error("esc did not leave the composer")
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)

	press(a, '?')
	if a.pages.Current() != PageHelp {
		t.Fatalf("current page = %q, want %q", a.pages.Current(), PageHelp)
	}
	press(a, '?')
	if a.pages.Current() != PageInbox {
		t.Errorf("current page = %q, want %q", a.pages.Current(), PageInbox)
	}
}

func TestQuitTearsDownShortcuts(t *testing.T) {
	a := newTestApp(t)

	a.traps.Capture(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))

	if n := len(a.svc.ActiveShortcuts("")); n != 0 {
		t.Errorf("got %d active shortcuts after quit, want 0", n)
	}
	if n := a.traps.Trap().Len(); n != 0 {
		t.Errorf("shared trap has %d bindings after quit, want 0", n)
	}
	a.Stop()
}

func TestDeclareAllSkipsComposer(t *testing.T) {
	svc := shortcut.NewService(trap.NewManager(nil), nil)
	DeclareAll(svc).BroadcastTo(scope.NewRoot(nil, nil))

	if err := svc.Err(); err != nil {
		t.Fatalf("BroadcastTo: %v", err)
	}
	for _, s := range svc.ActiveShortcuts("") {
		if s.Group == "Composer" {
			t.Errorf("composer shortcut %q listed", s.Combo)
		}
	}
	if n := len(svc.ActiveShortcuts("")); n != 9 {
		t.Errorf("got %d shortcuts, want 9", n)
	}
}

func TestFiredShortcutReachesAppBus(t *testing.T) {
	a := newTestApp(t)
	events, unsubscribe := a.bus.Subscribe(scope.KindPrefix, 4)
	defer unsubscribe()

	press(a, 'r')

	select {
	case evt := <-events:
		if evt.Kind != scope.KindPrefix+EventRefresh {
			t.Errorf("event kind = %q, want %q", evt.Kind, scope.KindPrefix+EventRefresh)
		}
	default:
		t.Fatal("no shortcut event on the app bus")
	}
}

func TestHelpFollowsPageSwitch(t *testing.T) {
	a := newTestApp(t)

	press(a, 'g')
	press(a, 'c')

	text := a.help.GetText(true)
	if strings.Contains(text, "Refresh inbox") || !strings.Contains(text, "New contact") {
		t.Errorf("help after switching to contacts:\n%s", text)
	}
	if got := a.status.Text(); !strings.Contains(got, "7 shortcuts") {
		t.Errorf("status = %q, want 7 shortcuts", got)
	}
}

func TestCrumbsCountPageShortcuts(t *testing.T) {
	a := newTestApp(t)
	if got := a.crumbs.GetText(true); !strings.Contains(got, "inbox ·2") {
		t.Errorf("crumbs = %q, want inbox ·2", got)
	}

	press(a, '?')
	if got := a.crumbs.GetText(true); !strings.Contains(got, "inbox ·2") || !strings.Contains(got, " help ") {
		t.Errorf("crumbs with help = %q", got)
	}
}
