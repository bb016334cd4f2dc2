package display

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders SVG source into a w×h RGBA image, scaled to fit.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("display: invalid svg size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("display: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return img, nil
}

// SVGTexture rasterizes SVG source into a blendable texture.
func SVGTexture(renderer *sdl.Renderer, data []byte, w, h int) (*sdl.Texture, error) {
	img, err := RasterizeSVG(data, w, h)
	if err != nil {
		return nil, err
	}
	return ImageTexture(renderer, img)
}

// ImageTexture uploads an RGBA image.
func ImageTexture(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("display: create surface: %w", err)
	}
	defer surface.Free()

	if surface.MustLock() {
		if err := surface.Lock(); err != nil {
			return nil, fmt.Errorf("display: lock surface: %w", err)
		}
	}
	pixels := surface.Pixels()
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(pixels[y*int(surface.Pitch):], src)
	}
	if surface.MustLock() {
		surface.Unlock()
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("display: create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
