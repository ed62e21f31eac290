package ui

import (
	"ZenTime/stopwatch"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme keeps the default theme but pins the dark stopwatch palette.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the palette color for name, always from the dark variant.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return stopwatch.BackgroundColor
	case theme.ColorNameSuccess:
		return stopwatch.FastestColor
	case theme.ColorNameError:
		return stopwatch.SlowestColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}
