package views

import (
	"strings"

	"github.com/rivo/tview"
)

// Composer is the text input for drafting messages. Its shortcuts are bound
// to a trap attached to the input, so they never show up in the help page.
type Composer struct {
	*tview.InputField
	onSend func(text string)
}

// NewComposer creates a new message composer.
func NewComposer() *Composer {
	input := tview.NewInputField().
		SetLabel("> ").
		SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

	return &Composer{InputField: input}
}

// SetOnSend sets the callback when a message is sent.
func (c *Composer) SetOnSend(fn func(text string)) {
	c.onSend = fn
}

// Send hands the current text to the send callback and clears the input.
// Blank drafts are ignored.
func (c *Composer) Send() {
	text := strings.TrimSpace(c.GetText())
	if text == "" {
		return
	}
	if c.onSend != nil {
		c.onSend(text)
	}
	c.SetText("")
}
