package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/matheus3301/shorty/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView lists the active shortcuts, grouped as the registry sorts them.
// It keeps the registry and reads it on every Refresh.
type HelpView struct {
	*tview.TextView
	theme  *ui.Theme
	fmt    *keyfmt.Formatter
	active *shortcut.Registry
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme, f *keyfmt.Formatter, active *shortcut.Registry) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	return &HelpView{
		TextView: tv,
		theme:    theme,
		fmt:      f,
		active:   active,
	}
}

// Refresh renders the current registry. Ungrouped shortcuts come last in
// registry order and are listed under "Other". Each molecule of a sequence
// is highlighted on its own.
func (hv *HelpView) Refresh() {
	hv.Clear()
	kc := fmt.Sprintf("#%06x", hv.theme.MenuKeyColor.Hex())
	gc := fmt.Sprintf("#%06x", hv.theme.GroupColor.Hex())

	group := "\x00"
	for s := range hv.active.All() {
		if s.Group != group {
			group = s.Group
			name := group
			if name == "" {
				name = "Other"
			}
			_, _ = fmt.Fprintf(hv, "\n  [%s::b]%s[-:-:-]\n\n", gc, tview.Escape(sanitize(name)))
		}

		molecules := hv.fmt.Molecules(s.Combo)
		keys := make([]string, len(molecules))
		width := len(molecules) - 1
		for i, m := range molecules {
			m = sanitize(m)
			keys[i] = fmt.Sprintf("[%s::r] %s [-:-:-]", kc, tview.Escape(m))
			width += utf8.RuneCountInString(m) + 2
		}
		pad := strings.Repeat(" ", max(14-width, 1))
		_, _ = fmt.Fprintf(hv, "  %s%s%s\n", strings.Join(keys, " "), pad, tview.Escape(sanitize(s.Description)))
	}
	hv.ScrollToBeginning()
}
