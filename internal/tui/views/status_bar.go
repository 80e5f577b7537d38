package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/shorty/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar shows the current page, the number of active shortcuts and the
// last shortcut event that fired.
type StatusBar struct {
	*tview.TextView
	theme   *ui.Theme
	page    string
	active  int
	flash   string
	expires time.Time
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.StatusBgColor)

	return &StatusBar{TextView: tv, theme: theme, now: time.Now}
}

// SetPage updates the page name display.
func (sb *StatusBar) SetPage(name string) {
	sb.page = name
	sb.render()
}

// SetActive updates the active shortcut count.
func (sb *StatusBar) SetActive(n int) {
	sb.active = n
	sb.render()
}

// Flash shows msg for d.
func (sb *StatusBar) Flash(msg string, d time.Duration) {
	sb.flash = msg
	sb.expires = sb.now().Add(d)
	sb.render()
}

// Text returns the rendered line without color tags.
func (sb *StatusBar) Text() string {
	return sb.GetText(true)
}

func (sb *StatusBar) render() {
	sb.Clear()

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %d shortcuts", tview.Escape(sb.page), sb.active)
	if sb.flash != "" && sb.now().Before(sb.expires) {
		line += fmt.Sprintf(" | [%s]%s[-]", fmt.Sprintf("#%06x", sb.theme.FlashColor.Hex()), tview.Escape(sb.flash))
	}

	_, _ = fmt.Fprint(sb, line)
}
