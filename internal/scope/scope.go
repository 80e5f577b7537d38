// Package scope provides lifecycle scopes that shortcut events are broadcast
// to. A scope tree mirrors the UI: a view owns a scope, destroying the view
// destroys its scope and runs every teardown registered on it.
//
// Scopes are not safe for concurrent use. Create, broadcast and destroy them
// from the UI goroutine (tview callbacks or QueueUpdate).
package scope

import (
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/shorty/internal/bus"
	"go.uber.org/zap"
)

// Bus event kinds published by scopes.
const (
	KindPrefix    = "shortcut."
	KindDestroyed = "scope.destroyed"
)

// Broadcasted is the bus payload for a broadcast event.
type Broadcasted struct {
	Scope uuid.UUID
	Event string
}

type listener struct {
	fn func()
}

type root struct {
	bus    *bus.Bus
	logger *zap.Logger
	flush  func()
}

// Scope is a node in the scope tree.
type Scope struct {
	id        uuid.UUID
	root      *root
	parent    *Scope
	children  []*Scope
	listeners map[string][]*listener
	onDestroy []func()
	destroyed bool
}

// NewRoot creates a root scope. b may be nil.
func NewRoot(b *bus.Bus, logger *zap.Logger) *Scope {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newScope(&root{bus: b, logger: logger}, nil)
}

func newScope(r *root, parent *Scope) *Scope {
	return &Scope{
		id:        uuid.New(),
		root:      r,
		parent:    parent,
		listeners: make(map[string][]*listener),
	}
}

// New creates a child scope. A child of a destroyed scope starts destroyed.
func (s *Scope) New() *Scope {
	child := newScope(s.root, s)
	if s.destroyed {
		child.destroyed = true
		return child
	}
	s.children = append(s.children, child)
	return child
}

// ID returns the scope id.
func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Parent returns the parent scope, nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Destroyed reports whether Destroy has run.
func (s *Scope) Destroyed() bool {
	return s.destroyed
}

// SetFlush sets the hook Flush runs, shared by the whole tree.
func (s *Scope) SetFlush(fn func()) {
	s.root.flush = fn
}

// On registers fn for event on this scope and returns a function removing it.
func (s *Scope) On(event string, fn func()) func() {
	l := &listener{fn: fn}
	s.listeners[event] = append(s.listeners[event], l)
	return func() {
		ls := s.listeners[event]
		for i, x := range ls {
			if x == l {
				s.listeners[event] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Broadcast delivers event to this scope and all its descendants, depth
// first, then publishes it on the bus.
func (s *Scope) Broadcast(event string) {
	if s.destroyed {
		s.root.logger.Debug("broadcast on destroyed scope ignored",
			zap.String("event", event), zap.Stringer("scope", s.id))
		return
	}
	s.deliver(event)
	if s.root.bus != nil {
		s.root.bus.Publish(bus.Event{
			Kind:      KindPrefix + event,
			Timestamp: time.Now(),
			Payload:   Broadcasted{Scope: s.id, Event: event},
		})
	}
}

func (s *Scope) deliver(event string) {
	ls := append([]*listener(nil), s.listeners[event]...)
	for _, l := range ls {
		l.fn()
	}
	children := append([]*Scope(nil), s.children...)
	for _, c := range children {
		if !c.destroyed {
			c.deliver(event)
		}
	}
}

// Flush runs the tree's flush hook, if any.
func (s *Scope) Flush() {
	if s.root.flush != nil {
		s.root.flush()
	}
}

// OnDestroy registers fn to run when the scope is destroyed.
func (s *Scope) OnDestroy(fn func()) {
	if s.destroyed {
		s.root.logger.Warn("OnDestroy on destroyed scope ignored", zap.Stringer("scope", s.id))
		return
	}
	s.onDestroy = append(s.onDestroy, fn)
}

// Destroy destroys the children, runs the teardown callbacks in
// registration order and detaches the scope from its parent.
// Calling it again does nothing.
func (s *Scope) Destroy() {
	if s.destroyed {
		return
	}
	s.teardown()

	if p := s.parent; p != nil {
		for i, c := range p.children {
			if c == s {
				p.children = append(p.children[:i:i], p.children[i+1:]...)
				break
			}
		}
	}
}

func (s *Scope) teardown() {
	s.destroyed = true

	children := s.children
	s.children = nil
	for _, c := range children {
		if !c.destroyed {
			c.teardown()
		}
	}

	fns := s.onDestroy
	s.onDestroy = nil
	for _, fn := range fns {
		fn()
	}
	clear(s.listeners)

	s.root.logger.Debug("scope destroyed", zap.Stringer("scope", s.id), zap.Int("teardowns", len(fns)))
	if s.root.bus != nil {
		s.root.bus.Publish(bus.Event{Kind: KindDestroyed, Timestamp: time.Now(), Payload: s.id})
	}
}
