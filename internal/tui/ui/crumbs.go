package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Crumb is one page of the stack together with the number of shortcuts
// its scope contributes.
type Crumb struct {
	Page      string
	Shortcuts int
}

// CrumbsFor pairs every page of stack with count(page).
func CrumbsFor(stack []string, count func(page string) int) []Crumb {
	out := make([]Crumb, len(stack))
	for i, page := range stack {
		out[i] = Crumb{Page: page, Shortcuts: count(page)}
	}
	return out
}

// Crumbs shows the page stack, topmost page highlighted. A page that owns
// shortcuts shows how many next to its name.
type Crumbs struct {
	*tview.TextView
	theme *Theme
}

// NewCrumbs creates a new breadcrumb bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &Crumbs{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders crumbs; the last one is the active page.
func (c *Crumbs) Update(crumbs []Crumb) {
	c.Clear()

	var sb strings.Builder
	for i, cr := range crumbs {
		if i > 0 {
			sb.WriteString(" > ")
		}
		active := i == len(crumbs)-1
		fg, bg := c.theme.CrumbInactiveFg, c.theme.CrumbInactiveBg
		if active {
			fg, bg = c.theme.CrumbActiveFg, c.theme.CrumbActiveBg
		}
		fmt.Fprintf(&sb, "[%s:%s:%s] %s", hex(fg), hex(bg), boldIf(active), tview.Escape(cr.Page))
		if cr.Shortcuts > 0 {
			fmt.Fprintf(&sb, " ·%d", cr.Shortcuts)
		}
		sb.WriteString(" [-:-:-]")
	}
	_, _ = fmt.Fprint(c, sb.String())
}

func boldIf(b bool) string {
	if b {
		return "b"
	}
	return ""
}

// hex returns c as a tview color tag value.
func hex(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
