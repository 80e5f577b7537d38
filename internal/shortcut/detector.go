package shortcut

// Detector binds key combos to handlers. The kind argument is only passed
// when a shortcut asks for a specific key event.
type Detector interface {
	Bind(combo string, handler func(), kind ...EventKind) error
	Unbind(combo string) error
}

// GlobalBinder is a Detector that can bind combos which keep firing while a
// text input has focus.
type GlobalBinder interface {
	Detector
	BindGlobal(combo string, handler func(), kind ...EventKind) error
}

// SupportsGlobal reports whether d can bind global combos.
func SupportsGlobal(d Detector) (GlobalBinder, bool) {
	g, ok := d.(GlobalBinder)
	return g, ok
}

// Element is a UI node a detector can be confined to.
type Element interface {
	HasFocus() bool
}

// Provider hands out detectors: the shared one, or a fresh one confined to a
// single element.
type Provider interface {
	Shared() Detector
	AttachedTo(el Element) Detector
}

// Context receives shortcut events and tells us when it goes away.
type Context interface {
	Broadcast(event string)
	OnDestroy(fn func())
}

// Flusher is implemented by contexts that need an explicit refresh after a
// broadcast.
type Flusher interface {
	Flush()
}
