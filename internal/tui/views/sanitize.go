package views

import "strings"

// sanitize drops codepoints tcell renders badly: skin tone modifiers, zero
// width joiners and variation selectors. Glyph overrides from the config
// often carry a VS16 ("⌨️"), which would otherwise shift the help columns.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x1F3FB && r <= 0x1F3FF,
			r == 0x200D,
			r >= 0xFE00 && r <= 0xFE0F,
			r >= 0xE0100 && r <= 0xE01EF:
			return -1
		}
		return r
	}, s)
}
