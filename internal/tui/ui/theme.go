package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor         tcell.Color
	FgColor         tcell.Color
	BorderColor     tcell.Color
	TitleColor      tcell.Color
	GroupColor      tcell.Color
	MenuKeyColor    tcell.Color
	GlobalKeyColor  tcell.Color
	CrumbActiveFg   tcell.Color
	CrumbActiveBg   tcell.Color
	CrumbInactiveFg tcell.Color
	CrumbInactiveBg tcell.Color
	FlashColor      tcell.Color
	StatusBgColor   tcell.Color
}

// DefaultTheme returns a k9s-inspired dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:         tcell.ColorBlack,
		FgColor:         tcell.ColorCadetBlue,
		BorderColor:     tcell.ColorDodgerBlue,
		TitleColor:      tcell.ColorFuchsia,
		GroupColor:      tcell.ColorOrange,
		MenuKeyColor:    tcell.ColorDodgerBlue,
		GlobalKeyColor:  tcell.ColorFuchsia,
		CrumbActiveFg:   tcell.ColorBlack,
		CrumbActiveBg:   tcell.ColorOrange,
		CrumbInactiveFg: tcell.ColorBlack,
		CrumbInactiveBg: tcell.ColorAqua,
		FlashColor:      tcell.ColorNavajoWhite,
		StatusBgColor:   tcell.ColorDarkSlateGray,
	}
}
