// Package shortcut registers keyboard shortcuts against a key detector and
// keeps the sorted list of active shortcuts used to render help screens.
package shortcut

// EventKind selects which key event a binding listens for.
type EventKind int

const (
	// KindDefault leaves the choice to the detector.
	KindDefault EventKind = iota
	KeyPress
	KeyDown
	KeyUp
)

func (k EventKind) String() string {
	switch k {
	case KeyPress:
		return "keypress"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return ""
	}
}

// Shortcut is a key combo bound to an event name.
// Combo is the natural key: at most one active shortcut exists per combo.
type Shortcut struct {
	Combo       string
	Event       string
	Description string
	Group       string // empty means ungrouped
	Global      bool
	Kind        EventKind
}

// Less reports whether a sorts before b in help listings.
// Shortcuts in the same group sort by combo, ungrouped shortcuts sink to the
// end and different groups sort by name.
func Less(a, b Shortcut) bool {
	if a.Group == b.Group {
		return a.Combo < b.Combo
	}
	if a.Group == "" {
		return false
	}
	if b.Group == "" {
		return true
	}
	return a.Group < b.Group
}
