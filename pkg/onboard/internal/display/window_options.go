package display

import (
	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions picks how the onboarding window opens. On a device the flow
// covers the whole screen without decorations; on a desktop it runs in a
// resizable window so the step pages can be checked at several sizes.
type WindowOptions struct {
	Borderless        bool // No title bar around the step pages
	Resizable         bool // Let the pages reflow while previewing
	FullscreenDesktop bool // Cover the device screen
	Hidden            bool // Open without showing, e.g. while fonts load
}

// deviceWindow is the fullscreen window the flow uses on a handheld.
var deviceWindow = WindowOptions{Borderless: true, FullscreenDesktop: true}

// previewWindow is the window used in development mode.
var previewWindow = WindowOptions{Resizable: true}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// orDefault returns wo, or the window for the current environment when wo
// is the zero value.
func (wo WindowOptions) orDefault() WindowOptions {
	if !wo.IsZero() {
		return wo
	}
	if constants.IsDevMode() {
		return previewWindow
	}
	return deviceWindow
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
