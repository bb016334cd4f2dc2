package ui

import (
	"fmt"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	dotSize    int32 = 10
	dotActiveW int32 = 26
	dotGap     int32 = 10
)

// PageIndicator draws one dot per step above the continue button.
type PageIndicator struct {
	screen *Screen
	count  int
	page   int
	hidden bool
}

func newPageIndicator(screen *Screen) *PageIndicator {
	return &PageIndicator{screen: screen, count: len(flow.Steps())}
}

func (p *PageIndicator) SetPage(index int) {
	p.page = index
}

func (p *PageIndicator) Hide() {
	p.hidden = true
}

func (p *PageIndicator) Draw(renderer *sdl.Renderer, area sdl.Rect) {
	if p.hidden || p.count == 0 {
		return
	}

	theme := display.GetTheme()
	total := dotActiveW + int32(p.count-1)*(dotSize+dotGap)
	x := area.X + (area.W-total)/2
	y := area.Y + area.H - constants.ButtonHeight - 2*constants.VerticalSpacing - dotSize

	for i := 0; i < p.count; i++ {
		w, color := dotSize, theme.HintColor
		if i == p.page {
			w, color = dotActiveW, theme.IndicatorColor
		}

		texture := p.screen.svg(fmt.Sprintf("dot-%d-%06x", w, colorHex(color)), dotSVG(w, dotSize, color), w, dotSize)
		if texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: dotSize})
		}
		x += w + dotGap
	}
}

func dotSVG(w, h int32, color sdl.Color) []byte {
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d"><rect width="%d" height="%d" rx="%d" fill="#%06x"/></svg>`,
		w, h, w, h, h/2, colorHex(color)))
}

func colorHex(c sdl.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
