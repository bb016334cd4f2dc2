package ui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
	"github.com/BrandonKowalski/onboard/pkg/onboard/text"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/*.svg
var assets embed.FS

// ErrQuit is returned by Run when the window is closed before the flow
// finishes.
var ErrQuit = errors.New("ui: window closed")

// Screen draws a flow in the SDL window. It is the view factory, the
// transitioner, the page indicator and the background for the flow it runs.
type Screen struct {
	window       *display.Window
	catalog      *text.Catalog
	art          *display.TextureCache
	missing      map[string]bool
	transitioner *SlideTransitioner
	indicator    *PageIndicator
	background   *GradientBackground
	finished     bool
	logger       *slog.Logger
}

// NewScreen prepares drawing into the window opened by Init.
func NewScreen(catalog *text.Catalog) (*Screen, error) {
	window := display.GetWindow()
	if window == nil {
		return nil, errors.New("ui: display not initialized")
	}

	s := &Screen{
		window:       window,
		catalog:      catalog,
		art:          display.NewTextureCache(),
		missing:      make(map[string]bool),
		transitioner: NewSlideTransitioner(0),
		background:   NewGradientBackground(),
		logger:       onboard.GetLogger(),
	}
	s.indicator = newPageIndicator(s)

	return s, nil
}

// Settings returns flow settings that render into this screen. The caller
// may still set Persistence and Logger.
func (s *Screen) Settings() onboard.Settings {
	return onboard.Settings{
		Views:        s,
		Transitioner: s.transitioner,
		Indicator:    s.indicator,
		Background:   s.background,
	}
}

func (s *Screen) NewView(p flow.Page, state *flow.Subject) router.View {
	switch p {
	case flow.PageWelcome:
		return newWelcomeView(s, state)
	case flow.PageSkillLevel:
		return newSkillLevelView(s, state)
	case flow.PageCompletion:
		return newCompletionView(s, state)
	default:
		return nil
	}
}

func (s *Screen) finish() {
	s.finished = true
}

// Run drives the window until the user finishes the completion page, the
// window is closed or ctx is done.
func (s *Screen) Run(ctx context.Context, f *onboard.Flow) error {
	renderer := s.window.Renderer
	area := sdl.Rect{W: s.window.GetWidth(), H: s.window.GetHeight()}

	s.logger.Info("Onboarding shown", "session", f.SessionID(), "step", f.State().Step.String())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				s.logger.Info("Onboarding window closed", "session", f.SessionID(), "step", f.State().Step.String())
				return ErrQuit
			}

			input := display.ProcessSDLEvent(event)
			if input == nil || s.transitioner.Busy() {
				continue
			}
			if current, ok := f.Pager().Current().(page); ok {
				current.handleInput(*input, now)
			}
		}

		if s.finished {
			s.logger.Info("Onboarding finished", "session", f.SessionID(), "skill_level", f.State().Model.SkillLevel.String())
			return nil
		}

		s.transitioner.Update(now)

		current, _ := f.Pager().Current().(page)
		if current != nil {
			current.update(now)
		}

		s.background.Draw(renderer, area, now)
		s.transitioner.Draw(renderer, area, current, now)
		s.indicator.Draw(renderer, area)
		s.window.Present()
	}
}

// Destroy frees cached artwork.
func (s *Screen) Destroy() {
	s.art.Destroy()
}

// asset returns the named embedded artwork at size×size. Missing or broken
// art is reported once and then skipped.
func (s *Screen) asset(name string, size int32) *sdl.Texture {
	key := fmt.Sprintf("%s@%d", name, size)
	if texture := s.art.Get(key); texture != nil {
		return texture
	}

	data, err := assets.ReadFile("assets/" + name + ".svg")
	if err != nil {
		if !s.missing[name] {
			s.missing[name] = true
			internal.AssertionFailure("ui.asset", err, "name", name)
		}
		return nil
	}
	return s.svg(key, data, size, size)
}

func (s *Screen) svg(key string, data []byte, w, h int32) *sdl.Texture {
	if s.missing[key] {
		return nil
	}
	texture, err := s.art.GetOrCreate(key, func() (*sdl.Texture, error) {
		return display.SVGTexture(s.window.Renderer, data, int(w), int(h))
	})
	if err != nil {
		s.missing[key] = true
		internal.AssertionFailure("ui.svg", err, "key", key)
		return nil
	}
	return texture
}
