package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/BrandonKowalski/onboard/pkg/onboard/router"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// page is a step view that the screen can drive.
type page interface {
	router.View
	router.Activatable
	router.SnapshotTestable
	handleInput(event display.Event, now time.Time)
	update(now time.Time)
	draw(renderer *sdl.Renderer, area sdl.Rect)
}

type pageBase struct {
	screen        *Screen
	state         *flow.Subject
	active        atomic.Bool
	lastInputTime time.Time
}

func (b *pageBase) SetActive(active bool) {
	b.active.Store(active)
}

// accept debounces presses and ignores releases.
func (b *pageBase) accept(event display.Event, now time.Time) bool {
	if !event.Pressed || now.Sub(b.lastInputTime) < constants.DefaultInputDelay {
		return false
	}
	b.lastInputTime = now
	return true
}

func (b *pageBase) proceed() {
	if b.state.Value().CanContinue() {
		b.state.Continue()
	}
}

// drawButton draws the continue button at the bottom of area.
func (b *pageBase) drawButton(renderer *sdl.Renderer, area sdl.Rect, label string, enabled, focused bool, alpha float64) {
	if alpha <= 0 {
		return
	}
	theme := display.GetTheme()

	w := min(constants.ButtonWidth, area.W-2*constants.HorizontalMargin)
	rect := sdl.Rect{
		X: area.X + (area.W-w)/2,
		Y: area.Y + area.H - constants.ButtonHeight - constants.VerticalSpacing,
		W: w,
		H: constants.ButtonHeight,
	}

	opacity := alpha
	if !enabled {
		opacity *= 0.3
	}

	fill := theme.AccentColor
	renderer.SetDrawColor(fill.R, fill.G, fill.B, uint8(display.Clamp01(opacity)*255))
	renderer.FillRect(&rect)

	if focused && enabled {
		outline := theme.TextColor
		renderer.SetDrawColor(outline.R, outline.G, outline.B, uint8(display.Clamp01(alpha)*255))
		renderer.DrawRect(&sdl.Rect{X: rect.X - 3, Y: rect.Y - 3, W: rect.W + 6, H: rect.H + 6})
	}

	font := display.Fonts.SmallFont
	if font == nil {
		return
	}
	tw := display.TextWidth(font, label)
	th := int32(font.Height())
	display.RenderText(renderer, font, label, rect.X+(rect.W-tw)/2, rect.Y+(rect.H-th)/2, theme.ButtonTextColor, opacity)
}

// drawArt copies the named asset centered at cx with its top at y.
func (b *pageBase) drawArt(renderer *sdl.Renderer, name string, cx, y, size int32, alpha float64) {
	texture := b.screen.asset(name, size)
	if texture == nil || alpha <= 0 {
		return
	}
	texture.SetAlphaMod(uint8(display.Clamp01(alpha) * 255))
	renderer.Copy(texture, nil, &sdl.Rect{X: cx - size/2, Y: y, W: size, H: size})
}
