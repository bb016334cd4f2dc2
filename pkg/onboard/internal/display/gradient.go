package display

import "github.com/veandco/go-sdl2/sdl"

// GradientAt samples evenly spaced color stops at t in [0, 1].
func GradientAt(stops []sdl.Color, t float64) sdl.Color {
	switch len(stops) {
	case 0:
		return sdl.Color{A: 255}
	case 1:
		return stops[0]
	}

	t = Clamp01(t)
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return LerpColor(stops[i], stops[i+1], pos-float64(i))
}

// BlendStops mixes two stop lists of the same length by t. Lists of
// different length are sampled at from's positions.
func BlendStops(from, to []sdl.Color, t float64) []sdl.Color {
	out := make([]sdl.Color, len(from))
	for i := range from {
		var pos float64
		if len(from) > 1 {
			pos = float64(i) / float64(len(from)-1)
		}
		out[i] = LerpColor(from[i], GradientAt(to, pos), t)
	}
	return out
}

// FillVerticalGradient paints rect top to bottom through stops.
func FillVerticalGradient(renderer *sdl.Renderer, rect sdl.Rect, stops []sdl.Color) {
	if rect.H <= 0 {
		return
	}
	span := float64(rect.H - 1)
	if span == 0 {
		span = 1
	}
	for y := int32(0); y < rect.H; y++ {
		c := GradientAt(stops, float64(y)/span)
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.DrawLine(rect.X, rect.Y+y, rect.X+rect.W-1, rect.Y+y)
	}
}
