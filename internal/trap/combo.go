package trap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Parse errors.
var (
	ErrEmptyCombo   = errors.New("empty key combo")
	ErrInvalidCombo = errors.New("invalid key combo")
)

// ComboError reports a combo the trap could not parse.
type ComboError struct {
	Combo string
	Err   error
}

func (e *ComboError) Error() string {
	return fmt.Sprintf("combo %q: %v", e.Combo, e.Err)
}

func (e *ComboError) Unwrap() error {
	return e.Err
}

// stroke is a single normalized key press.
type stroke struct {
	key tcell.Key
	r   rune
	mod tcell.ModMask
}

func (s stroke) String() string {
	if s.key == tcell.KeyRune {
		return fmt.Sprintf("%d:%q", s.mod, s.r)
	}
	return fmt.Sprintf("%d:k%d", s.mod, s.key)
}

var modifierNames = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"mod":     tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"option":  tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
	"command": tcell.ModMeta,
	"cmd":     tcell.ModMeta,
}

var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"del":       tcell.KeyDelete,
	"delete":    tcell.KeyDelete,
	"ins":       tcell.KeyInsert,
	"insert":    tcell.KeyInsert,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pageup":    tcell.KeyPgUp,
	"pgup":      tcell.KeyPgUp,
	"pagedown":  tcell.KeyPgDn,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

var runeNames = map[string]rune{
	"space": ' ',
	"plus":  '+',
}

// parseCombo splits a combo into molecules ("g i" is two presses) and each
// molecule into "+" joined atoms, the last one being the key.
func parseCombo(combo string) ([]stroke, error) {
	molecules := strings.Fields(combo)
	if len(molecules) == 0 {
		return nil, &ComboError{Combo: combo, Err: ErrEmptyCombo}
	}
	seq := make([]stroke, 0, len(molecules))
	for _, m := range molecules {
		s, err := parseMolecule(m)
		if err != nil {
			return nil, &ComboError{Combo: combo, Err: err}
		}
		seq = append(seq, s)
	}
	return seq, nil
}

func parseMolecule(m string) (stroke, error) {
	if m == "+" {
		return stroke{key: tcell.KeyRune, r: '+'}, nil
	}
	atoms := strings.Split(m, "+")
	var mod tcell.ModMask
	for _, a := range atoms[:len(atoms)-1] {
		bit, ok := modifierNames[strings.ToLower(a)]
		if !ok {
			return stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidCombo, a)
		}
		mod |= bit
	}

	atom := atoms[len(atoms)-1]
	if atom == "" {
		return stroke{}, fmt.Errorf("%w: missing key in %q", ErrInvalidCombo, m)
	}
	lower := strings.ToLower(atom)
	if k, ok := keyNames[lower]; ok {
		return namedStroke(k, mod), nil
	}
	if r, ok := runeNames[lower]; ok {
		return runeStroke(r, mod), nil
	}
	runes := []rune(atom)
	if len(runes) != 1 {
		return stroke{}, fmt.Errorf("%w: unknown key %q", ErrInvalidCombo, atom)
	}
	return runeStroke(runes[0], mod), nil
}

// runeStroke folds shift into the rune's case; terminals report "G", not shift+g.
func runeStroke(r rune, mod tcell.ModMask) stroke {
	if mod&tcell.ModShift != 0 {
		r = unicode.ToUpper(r)
		mod &^= tcell.ModShift
	}
	if mod&tcell.ModCtrl != 0 {
		r = unicode.ToLower(r)
	}
	return stroke{key: tcell.KeyRune, r: r, mod: mod}
}

// namedStroke maps named keys onto what a terminal actually sends: ctrl+enter
// is ctrl+m, ctrl+tab is ctrl+i and shift+tab is a back tab.
func namedStroke(k tcell.Key, mod tcell.ModMask) stroke {
	switch {
	case k == tcell.KeyTab && mod&tcell.ModShift != 0, k == tcell.KeyBacktab:
		return stroke{key: tcell.KeyBacktab, mod: mod &^ tcell.ModShift}
	case k == tcell.KeyEnter && mod&tcell.ModCtrl != 0:
		return stroke{key: tcell.KeyRune, r: 'm', mod: mod &^ tcell.ModShift}
	case k == tcell.KeyTab && mod&tcell.ModCtrl != 0:
		return stroke{key: tcell.KeyRune, r: 'i', mod: mod &^ tcell.ModShift}
	}
	return stroke{key: k, mod: mod}
}

// strokeOf normalizes a tcell key event the same way parseMolecule
// normalizes a molecule.
func strokeOf(ev *tcell.EventKey) stroke {
	k, mod := ev.Key(), ev.Modifiers()
	switch {
	case k == tcell.KeyRune:
		return runeStroke(ev.Rune(), mod)
	case k == tcell.KeyBackspace && mod&tcell.ModCtrl == 0:
		return stroke{key: tcell.KeyBackspace2, mod: mod}
	case (k == tcell.KeyTab || k == tcell.KeyEnter || k == tcell.KeyEscape) && mod&tcell.ModCtrl == 0:
		return stroke{key: k, mod: mod}
	case k == tcell.KeyCtrlSpace:
		return stroke{key: tcell.KeyRune, r: ' ', mod: mod | tcell.ModCtrl}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return stroke{key: tcell.KeyRune, r: 'a' + rune(k-tcell.KeyCtrlA), mod: (mod | tcell.ModCtrl) &^ tcell.ModShift}
	}
	return namedStroke(k, mod)
}

func seqKey(seq []stroke) string {
	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func hasPrefix(seq, prefix []stroke) bool {
	if len(prefix) >= len(seq) {
		return false
	}
	for i := range prefix {
		if seq[i] != prefix[i] {
			return false
		}
	}
	return true
}
