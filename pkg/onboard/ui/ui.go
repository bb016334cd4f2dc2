// Package ui renders the onboarding flow with SDL: one page per step, page
// slides between them, a page indicator and a gradient background.
//
//	ui.Init(ui.Options{WindowTitle: "Onboarding", FontPath: font})
//	defer ui.Close()
//
//	screen, _ := ui.NewScreen(catalog)
//	f, err := onboard.Start(store, screen.Settings())
//	if onboard.IsNotRequired(err) {
//		return
//	}
//	defer f.Close()
//	err = screen.Run(ctx, f)
package ui

import (
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/BrandonKowalski/onboard/pkg/onboard/platform/cannoli"
)

// Options configures the window and theme.
type Options struct {
	WindowTitle string // Window title displayed in windowed mode
	Windowed    bool   // Resizable window instead of borderless fullscreen
	FontPath    string // TTF font for all text
	AccentColor uint32 // Custom accent color as 0xRRGGBB; zero keeps the theme's
	IsCannoli   bool   // Use the Cannoli CFW theme and font
}

// Init applies the theme and opens the window. Must be called before
// NewScreen.
func Init(options Options) error {
	theme := display.DefaultTheme(options.FontPath)
	if options.IsCannoli {
		fontPath := options.FontPath
		if fontPath == "" {
			fontPath = cannoli.DefaultFontPath
		}
		theme = cannoli.Theme(fontPath)
	}
	if options.AccentColor != 0 {
		theme.AccentColor = display.HexToColor(options.AccentColor)
	}
	display.SetTheme(theme)

	var winOpts display.WindowOptions
	if options.Windowed {
		winOpts = display.WindowOptions{Resizable: true}
	}

	return display.Init(options.WindowTitle, winOpts)
}

// Close releases all SDL resources.
func Close() {
	display.Cleanup()
}
