// Package trap detects key combos and key sequences in tcell key events.
//
// A Trap plays the role mousetrap plays in a browser: combos are bound to
// handlers and every key event is fed through HandleEvent. Terminals only
// report key presses, so every binding fires on the press regardless of the
// key event kind it was bound for.
package trap

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/shorty/internal/shortcut"
	"go.uber.org/zap"
)

// SequenceTimeout is how long a partially typed sequence stays pending.
const SequenceTimeout = time.Second

type binding struct {
	combo   string
	seq     []stroke
	handler func()
	kind    shortcut.EventKind
	global  bool
}

// Trap maps key combos to handlers.
// It is not safe for concurrent use; feed it from the UI event loop.
type Trap struct {
	bindings map[string]*binding
	pending  []stroke
	last     time.Time
	timeout  time.Duration
	stop     func() bool
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a Trap.
type Option func(*Trap)

// WithTimeout sets how long a sequence prefix stays pending.
func WithTimeout(d time.Duration) Option {
	return func(t *Trap) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithStopFunc sets a predicate that suppresses regular (non-global)
// bindings, typically "a text input has focus".
func WithStopFunc(fn func() bool) Option {
	return func(t *Trap) { t.stop = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Trap) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Trap) { t.now = now }
}

// New creates an empty trap.
func New(opts ...Option) *Trap {
	t := &Trap{
		bindings: make(map[string]*binding),
		timeout:  SequenceTimeout,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Bind binds combo to handler. Binding a combo again replaces the handler.
func (t *Trap) Bind(combo string, handler func(), kind ...shortcut.EventKind) error {
	return t.bind(combo, handler, false, kind)
}

// BindGlobal is Bind for combos that keep firing while the stop predicate
// reports a text input has focus.
func (t *Trap) BindGlobal(combo string, handler func(), kind ...shortcut.EventKind) error {
	return t.bind(combo, handler, true, kind)
}

func (t *Trap) bind(combo string, handler func(), global bool, kind []shortcut.EventKind) error {
	seq, err := parseCombo(combo)
	if err != nil {
		return err
	}
	b := &binding{combo: combo, seq: seq, handler: handler, global: global}
	if len(kind) > 0 {
		b.kind = kind[0]
	}
	t.bindings[seqKey(seq)] = b
	t.logger.Debug("combo bound",
		zap.String("combo", combo),
		zap.Bool("global", global),
		zap.Stringer("kind", b.kind))
	return nil
}

// Unbind removes combo. Unbinding an unknown combo is a no-op.
func (t *Trap) Unbind(combo string) error {
	seq, err := parseCombo(combo)
	if err != nil {
		return err
	}
	key := seqKey(seq)
	if _, ok := t.bindings[key]; ok {
		delete(t.bindings, key)
		t.logger.Debug("combo unbound", zap.String("combo", combo))
	}
	return nil
}

// Len returns the number of bound combos.
func (t *Trap) Len() int {
	return len(t.bindings)
}

// Reset drops a pending sequence.
func (t *Trap) Reset() {
	t.pending = nil
}

// HandleEvent feeds a key event to the trap and reports whether the event
// was consumed, either by firing a handler or by extending a pending sequence.
func (t *Trap) HandleEvent(ev *tcell.EventKey) bool {
	now := t.now()
	s := strokeOf(ev)
	stopped := t.stop != nil && t.stop()

	if len(t.pending) > 0 && now.Sub(t.last) <= t.timeout {
		cand := make([]stroke, 0, len(t.pending)+1)
		cand = append(append(cand, t.pending...), s)
		if t.dispatch(cand, stopped, now) {
			return true
		}
	}
	t.pending = nil
	return t.dispatch([]stroke{s}, stopped, now)
}

func (t *Trap) dispatch(cand []stroke, stopped bool, now time.Time) bool {
	var prefix bool
	if b, ok := t.bindings[seqKey(cand)]; ok && (b.global || !stopped) {
		t.pending = nil
		b.handler()
		return true
	}
	for _, b := range t.bindings {
		if (b.global || !stopped) && hasPrefix(b.seq, cand) {
			prefix = true
			break
		}
	}
	if prefix {
		t.pending = cand
		t.last = now
		return true
	}
	return false
}
