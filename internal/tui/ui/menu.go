package ui

import (
	"fmt"

	"github.com/matheus3301/shorty/internal/keyfmt"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/rivo/tview"
)

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Global      bool // fires inside text inputs too (displayed in a different color)
}

// HintsFor turns shortcuts into menu hints with pretty printed keys.
func HintsFor(list []shortcut.Shortcut, f *keyfmt.Formatter) []MenuHint {
	hints := make([]MenuHint, 0, len(list))
	for _, s := range list {
		hints = append(hints, MenuHint{
			Key:         f.Format(s.Combo),
			Description: s.Description,
			Global:      s.Global,
		})
	}
	return hints
}

// Menu displays keyboard shortcut hints in a vertical list.
type Menu struct {
	*tview.TextView
	theme *Theme
}

// NewMenu creates a new menu hint bar.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	return &Menu{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders menu hints as a vertical list (one per line).
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()

	keyColor := hex(m.theme.MenuKeyColor)
	globalColor := hex(m.theme.GlobalKeyColor)

	for _, h := range hints {
		kc := keyColor
		if h.Global {
			kc = globalColor
		}
		_, _ = fmt.Fprintf(m, "[%s::b]<%s>[-:-:-] %s\n", kc, tview.Escape(h.Key), h.Description)
	}
}
