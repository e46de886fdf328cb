package callout

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"
)

// Theme holds the bubble colors. Alpha is non-premultiplied; the renderer
// converts through color.Color the same way the rest of the vertex coloring
// does.
type Theme struct {
	Background color.Color
	Border     color.Color
	Shadow     color.Color
	// Text is a suggested foreground for hosted content; the library never
	// draws it itself.
	Text color.Color
}

var (
	darkTheme = Theme{
		Background: color.NRGBA{0x2e, 0x2e, 0x33, 0xf2},
		Border:     color.NRGBA{0x9a, 0x9a, 0xa2, 0xff},
		Shadow:     color.NRGBA{0x00, 0x00, 0x00, 0x50},
		Text:       color.NRGBA{0xf0, 0xf0, 0xf0, 0xff},
	}
	lightTheme = Theme{
		Background: color.NRGBA{0xfa, 0xfa, 0xf7, 0xf2},
		Border:     color.NRGBA{0x50, 0x50, 0x55, 0xff},
		Shadow:     color.NRGBA{0x00, 0x00, 0x00, 0x30},
		Text:       color.NRGBA{0x20, 0x20, 0x24, 0xff},
	}

	currentTheme *Theme
)

// DarkTheme returns the built-in dark palette.
func DarkTheme() *Theme { t := darkTheme; return &t }

// LightTheme returns the built-in light palette.
func LightTheme() *Theme { t := lightTheme; return &t }

// SetTheme replaces the palette for all callouts and invalidates their
// cached backgrounds.
func SetTheme(t *Theme) {
	currentTheme = t
	for _, p := range active {
		p.invalidateBackground()
	}
}

// CurrentTheme returns the palette in use, picking one from the OS
// appearance on first call.
func CurrentTheme() *Theme { return themeOrDefault() }

// themeOrDefault lazily picks a palette from the OS appearance, falling back
// to dark when the query fails.
func themeOrDefault() *Theme {
	if currentTheme == nil {
		darkMode, err := dark.IsDarkMode()
		if err == nil && !darkMode {
			currentTheme = LightTheme()
		} else {
			currentTheme = DarkTheme()
		}
	}
	return currentTheme
}
