// Package display wraps the SDL window, renderer, fonts and input used by the
// onboarding views. There is one window per process.
package display

import (
	"fmt"

	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init starts SDL, opens the window and loads the theme's fonts.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("display: sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("display: ttf init: %w", err)
	}

	openControllers()

	w, err := initWindow(title, winOpts.orDefault())
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	initFonts(GetTheme().FontPath, DefaultFontSizes)

	internal.GetInternalLogger().Debug("Display initialized", "width", w.GetWidth(), "height", w.GetHeight())

	return nil
}

// Cleanup releases everything Init acquired.
func Cleanup() {
	closeFonts()
	closeControllers()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
}
