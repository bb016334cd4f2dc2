package display

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	width, height   int32
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := int32(1024), int32(768)
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil && !constants.IsDevMode() {
		width, height = mode.W, mode.H
		x, y = 0, 0
	}

	width = sizeFromEnv(constants.WindowWidthEnvVar, width)
	height = sizeFromEnv(constants.WindowHeightEnvVar, height)

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("display: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("display: create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   win,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

func sizeFromEnv(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the window opened by Init, or nil before Init.
func GetWindow() *Window {
	return window
}

// GetWidth is the logical width all layout is done in.
func (w *Window) GetWidth() int32 {
	return w.width
}

func (w *Window) GetHeight() int32 {
	return w.height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.DefaultFrameDelay)
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
