package views

import (
	"fmt"

	"github.com/matheus3301/shorty/internal/tui/ui"
	"github.com/rivo/tview"
)

// ListView is a titled, selectable list used for the inbox and contacts pages.
type ListView struct {
	*tview.List
}

// NewListView creates a list with the given title.
func NewListView(theme *ui.Theme, title string) *ListView {
	l := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	l.SetBorder(true)
	l.SetBorderColor(theme.BorderColor)
	l.SetTitle(fmt.Sprintf(" %s ", title))
	l.SetTitleColor(theme.TitleColor)
	l.SetBackgroundColor(theme.BgColor)
	l.SetMainTextColor(theme.FgColor)

	return &ListView{List: l}
}

// SetItems replaces the list content.
func (lv *ListView) SetItems(items []string) {
	lv.Clear()
	for _, it := range items {
		lv.AddItem(sanitize(it), "", 0, nil)
	}
}

// Next moves the selection down, wrapping around.
func (lv *ListView) Next() {
	lv.move(1)
}

// Prev moves the selection up, wrapping around.
func (lv *ListView) Prev() {
	lv.move(-1)
}

func (lv *ListView) move(delta int) {
	n := lv.GetItemCount()
	if n == 0 {
		return
	}
	lv.SetCurrentItem((lv.GetCurrentItem() + delta + n) % n)
}

// Selected returns the selected item text, or empty.
func (lv *ListView) Selected() string {
	if lv.GetItemCount() == 0 {
		return ""
	}
	main, _ := lv.GetItemText(lv.GetCurrentItem())
	return main
}
