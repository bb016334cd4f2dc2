// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultFontPath is where Cannoli keeps its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Theme creates a theme with Cannoli's teal accent on a flat dark
// background, using the specified font.
func Theme(fontPath string) display.Theme {
	return display.Theme{
		AccentColor:     display.HexToColor(0x008080),
		ButtonTextColor: display.HexToColor(0xFFFFFF),
		TextColor:       display.HexToColor(0xFFFFFF),
		HintColor:       display.HexToColor(0xA0A0A0),
		IndicatorColor:  display.HexToColor(0x00B3B3),
		Gradient:        []sdl.Color{display.HexToColor(0x101010), display.HexToColor(0x1E1E1E)},
		VariantGradient: []sdl.Color{display.HexToColor(0x101010), display.HexToColor(0x003838)},
		FontPath:        fontPath,
	}
}
