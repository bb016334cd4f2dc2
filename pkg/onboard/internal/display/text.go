package display

import (
	"strings"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextWidth is the rendered width of text, or 0 without a font.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

func lineHeight(font *ttf.Font) int32 {
	_, h, err := font.SizeUTF8("Aj")
	if err != nil {
		return 20
	}
	return int32(h)
}

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// are kept.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if TextWidth(font, candidate) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// MultilineHeight is the height RenderMultilineText would use.
func MultilineHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	if font == nil || text == "" {
		return 0
	}
	lines := int32(len(WrapText(font, text, maxWidth)))
	h := lineHeight(font)
	return lines*h + (lines-1)*h/5
}

// RenderText draws one line with its top-left corner at x, y and returns
// its size. alpha scales the color's opacity.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, alpha float64) (int32, int32) {
	if font == nil || text == "" || alpha <= 0 {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(uint8(Clamp01(alpha) * 255))
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})

	return surface.W, surface.H
}

// RenderMultilineText wraps text to maxWidth and draws it. x is the left
// edge, center or right edge depending on align. Returns the height used.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign, alpha float64) int32 {
	if font == nil || text == "" {
		return 0
	}

	h := lineHeight(font)
	spacing := h / 5
	top := y

	for _, line := range WrapText(font, text, maxWidth) {
		lx := x
		switch align {
		case constants.TextAlignCenter:
			lx = x - TextWidth(font, line)/2
		case constants.TextAlignRight:
			lx = x - TextWidth(font, line)
		}
		RenderText(renderer, font, line, lx, y, color, alpha)
		y += h + spacing
	}

	return y - top - spacing
}
