package display

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Inset shrinks rect by p.
func (p Padding) Inset(rect sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: rect.X + p.Left,
		Y: rect.Y + p.Top,
		W: max(rect.W-p.Left-p.Right, 0),
		H: max(rect.H-p.Top-p.Bottom, 0),
	}
}
