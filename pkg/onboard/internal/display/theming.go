package display

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and font of the onboarding screens.
type Theme struct {
	AccentColor     sdl.Color   // Continue button and selected option
	ButtonTextColor sdl.Color   // Label on the continue button
	TextColor       sdl.Color   // Titles and headlines
	HintColor       sdl.Color   // Body copy and hints
	IndicatorColor  sdl.Color   // Active page indicator dot
	Gradient        []sdl.Color // Background stops, top to bottom
	VariantGradient []sdl.Color // Background stops on the terminal step
	FontPath        string      // Path to the UI font
}

var currentTheme = DefaultTheme("")

// DefaultTheme is the dark blue gradient theme with the given font.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		AccentColor:     HexToColor(0x0A84FF),
		ButtonTextColor: HexToColor(0xFFFFFF),
		TextColor:       HexToColor(0xFFFFFF),
		HintColor:       HexToColor(0x8E8E93),
		IndicatorColor:  HexToColor(0xFFA100),
		Gradient: []sdl.Color{
			HexToColor(0x000000),
			HexToColor(0x1A1A29),
			HexToColor(0x33334F),
			HexToColor(0x4A4A6E),
		},
		VariantGradient: []sdl.Color{
			HexToColor(0x000000),
			HexToColor(0x4D2100),
			HexToColor(0x4D2100),
			HexToColor(0x000000),
		},
		FontPath: fontPath,
	}
}

// SetTheme sets the active theme. Call before Init for the font to apply.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// LerpColor blends a toward b by t in [0, 1].
func LerpColor(a, b sdl.Color, t float64) sdl.Color {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return sdl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
