package shortcut

import (
	"fmt"

	"go.uber.org/zap"
)

// Service buffers shortcut declarations and activates them against a
// Context. It is a stateful builder: every method mutates the service and
// returns it for chaining.
type Service struct {
	provider Provider
	shared   Detector
	active   *Registry
	buffer   []Shortcut
	bounding Element
	err      error
	logger   *zap.Logger
}

// NewService creates a service using the given detector provider.
func NewService(p Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: p,
		shared:   p.Shared(),
		active:   NewRegistry(),
		logger:   logger,
	}
}

// Within confines the next BroadcastTo to el unless it names an element itself.
func (s *Service) Within(el Element) *Service {
	s.bounding = el
	return s
}

// Add buffers a shortcut until the next BroadcastTo.
func (s *Service) Add(sc Shortcut) *Service {
	s.buffer = append(s.buffer, sc)
	return s
}

// On buffers a shortcut using the detector's default key event.
func (s *Service) On(combo, event, desc, group string) *Service {
	return s.Add(Shortcut{Combo: combo, Event: event, Description: desc, Group: group})
}

// OnKeyPress is On for keypress events.
func (s *Service) OnKeyPress(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, false, KeyPress)
}

// OnKeyDown is On for keydown events.
func (s *Service) OnKeyDown(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, false, KeyDown)
}

// OnKeyUp is On for keyup events.
func (s *Service) OnKeyUp(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, false, KeyUp)
}

// OnGlobal buffers a shortcut that also fires inside text inputs.
func (s *Service) OnGlobal(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, true, KindDefault)
}

// OnGlobalKeyPress is OnGlobal for keypress events.
func (s *Service) OnGlobalKeyPress(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, true, KeyPress)
}

// OnGlobalKeyDown is OnGlobal for keydown events.
func (s *Service) OnGlobalKeyDown(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, true, KeyDown)
}

// OnGlobalKeyUp is OnGlobal for keyup events.
func (s *Service) OnGlobalKeyUp(combo, event, desc, group string) *Service {
	return s.add(combo, event, desc, group, true, KeyUp)
}

func (s *Service) add(combo, event, desc, group string, global bool, kind EventKind) *Service {
	return s.Add(Shortcut{
		Combo:       combo,
		Event:       event,
		Description: desc,
		Group:       group,
		Global:      global,
		Kind:        kind,
	})
}

// Off unbinds combo from d, or from the shared detector when d is omitted.
// The active registry is left untouched.
func (s *Service) Off(combo string, d ...Detector) *Service {
	target := s.shared
	if len(d) > 0 && d[0] != nil {
		target = d[0]
	}
	if err := target.Unbind(combo); err != nil {
		s.logger.Warn("unbind failed", zap.String("combo", combo), zap.Error(err))
	}
	return s
}

// BroadcastTo binds every buffered shortcut so that it broadcasts its event
// on ctx, and unbinds it again when ctx is destroyed.
//
// When an element is given (or was set with Within) the shortcuts are bound
// to a detector confined to that element and stay out of the active list.
// A bind error stops the commit: shortcuts bound before it stay active, the
// rest stay buffered and the error is reported by Err.
func (s *Service) BroadcastTo(ctx Context, el ...Element) *Service {
	scope := s.bounding
	if len(el) > 0 && el[0] != nil {
		scope = el[0]
	}

	trap := s.shared
	if scope != nil {
		trap = s.provider.AttachedTo(scope)
	}

	s.err = nil
	done := 0
	for _, sc := range s.buffer {
		if err := s.bind(ctx, trap, sc, scope != nil); err != nil {
			s.err = fmt.Errorf("bind %q: %w", sc.Combo, err)
			s.logger.Error("shortcut bind failed", zap.String("combo", sc.Combo), zap.Error(err))
			break
		}
		done++
	}

	if s.err == nil {
		clear(s.buffer)
		s.buffer = s.buffer[:0]
	} else {
		s.buffer = append(s.buffer[:0], s.buffer[done:]...)
	}
	s.bounding = nil
	s.active.Commit()
	return s
}

func (s *Service) bind(ctx Context, trap Detector, sc Shortcut, scoped bool) error {
	bindFn := trap.Bind
	if sc.Global {
		if g, ok := SupportsGlobal(trap); ok {
			bindFn = g.BindGlobal
		} else {
			s.logger.Debug("global bind not available, falling back to regular bind",
				zap.String("combo", sc.Combo))
		}
	}

	event := sc.Event
	handler := func() {
		ctx.Broadcast(event)
		if f, ok := ctx.(Flusher); ok {
			f.Flush()
		}
	}

	var err error
	if sc.Kind != KindDefault {
		err = bindFn(sc.Combo, handler, sc.Kind)
	} else {
		err = bindFn(sc.Combo, handler)
	}
	if err != nil {
		return err
	}

	if !scoped {
		s.active.Upsert(sc)
	}

	combo := sc.Combo
	ctx.OnDestroy(func() {
		if err := trap.Unbind(combo); err != nil {
			s.logger.Warn("unbind on destroy failed", zap.String("combo", combo), zap.Error(err))
		}
		if !scoped {
			s.active.Remove(combo)
		}
	})
	return nil
}

// ActiveShortcuts returns a snapshot of the active shortcuts in group, or
// of all of them when group is empty.
func (s *Service) ActiveShortcuts(group string) []Shortcut {
	return s.active.FilterByGroup(group)
}

// Active returns the live registry. It stays current across later commits
// and teardowns; do not mutate it.
func (s *Service) Active() *Registry {
	return s.active
}

// Pending returns the number of buffered, uncommitted shortcuts.
func (s *Service) Pending() int {
	return len(s.buffer)
}

// Err returns the bind error that stopped the last BroadcastTo, if any.
func (s *Service) Err() error {
	return s.err
}

// Discard drops every buffered shortcut and the bounding element.
func (s *Service) Discard() *Service {
	clear(s.buffer)
	s.buffer = s.buffer[:0]
	s.bounding = nil
	return s
}

// Shared returns the shared detector.
func (s *Service) Shared() Detector {
	return s.shared
}
