package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

const variantDuration = 4 * time.Second

// GradientBackground paints the theme gradient behind every page and blends
// to the variant gradient once the flow reaches its last step.
type GradientBackground struct {
	blend tween
}

func NewGradientBackground() *GradientBackground {
	return &GradientBackground{}
}

func (b *GradientBackground) ApplyVariant() {
	b.blend.animate(time.Now(), 1, variantDuration)
}

func (b *GradientBackground) Draw(renderer *sdl.Renderer, area sdl.Rect, now time.Time) {
	theme := display.GetTheme()
	stops := display.BlendStops(theme.Gradient, theme.VariantGradient, b.blend.value(now))
	display.FillVerticalGradient(renderer, area, stops)
}
