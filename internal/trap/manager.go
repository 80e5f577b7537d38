package trap

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/shorty/internal/shortcut"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// ElementTrap is a trap confined to one element: it only fires while the
// element has focus. It has no global bind.
type ElementTrap struct {
	el   shortcut.Element
	trap *Trap
}

// Bind implements shortcut.Detector.
func (e *ElementTrap) Bind(combo string, handler func(), kind ...shortcut.EventKind) error {
	return e.trap.Bind(combo, handler, kind...)
}

// Unbind implements shortcut.Detector.
func (e *ElementTrap) Unbind(combo string) error {
	return e.trap.Unbind(combo)
}

// Element returns the element the trap is attached to.
func (e *ElementTrap) Element() shortcut.Element {
	return e.el
}

// Len returns the number of bound combos.
func (e *ElementTrap) Len() int {
	return e.trap.Len()
}

// HandleEvent feeds ev to the trap if its element has focus.
func (e *ElementTrap) HandleEvent(ev *tcell.EventKey) bool {
	if !e.el.HasFocus() {
		e.trap.Reset()
		return false
	}
	return e.trap.HandleEvent(ev)
}

// Manager owns the shared trap and the element traps handed out by
// AttachedTo, and routes key events to them. It implements shortcut.Provider.
type Manager struct {
	shared   *Trap
	attached []*ElementTrap
	opts     []Option
	logger   *zap.Logger
}

// NewManager creates a manager. The options apply to every trap; a stop
// predicate only applies to the shared one, since an element trap is meant
// to fire inside its own element.
func NewManager(logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]Option{WithLogger(logger)}, opts...)
	return &Manager{
		shared: New(opts...),
		opts:   opts,
		logger: logger,
	}
}

// Shared implements shortcut.Provider.
func (m *Manager) Shared() shortcut.Detector {
	return m.shared
}

// Trap returns the shared trap.
func (m *Manager) Trap() *Trap {
	return m.shared
}

// AttachedTo implements shortcut.Provider.
func (m *Manager) AttachedTo(el shortcut.Element) shortcut.Detector {
	opts := append(append([]Option(nil), m.opts...), WithStopFunc(nil))
	et := &ElementTrap{el: el, trap: New(opts...)}
	m.attached = append(m.attached, et)
	m.logger.Debug("element trap attached", zap.Int("attached", len(m.attached)))
	return et
}

// Attached returns the number of live element traps.
func (m *Manager) Attached() int {
	return len(m.attached)
}

// HandleEvent routes ev to the most recently attached focused element trap
// first, then to the shared trap. Element traps with no bindings left are
// dropped.
func (m *Manager) HandleEvent(ev *tcell.EventKey) bool {
	m.prune()
	for i := len(m.attached) - 1; i >= 0; i-- {
		if m.attached[i].HandleEvent(ev) {
			return true
		}
	}
	return m.shared.HandleEvent(ev)
}

// Capture adapts HandleEvent to tview.Application.SetInputCapture.
func (m *Manager) Capture(ev *tcell.EventKey) *tcell.EventKey {
	if m.HandleEvent(ev) {
		return nil
	}
	return ev
}

func (m *Manager) prune() {
	kept := m.attached[:0]
	for _, et := range m.attached {
		if et.Len() > 0 {
			kept = append(kept, et)
		}
	}
	clear(m.attached[len(kept):])
	m.attached = kept
}

// InputFocused returns a stop predicate reporting whether app's focused
// primitive accepts text.
func InputFocused(app *tview.Application) func() bool {
	return func() bool {
		switch app.GetFocus().(type) {
		case *tview.InputField, *tview.TextArea:
			return true
		}
		return false
	}
}
