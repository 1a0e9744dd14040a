package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// Symmetric pads vertical and horizontal sides separately.
func Symmetric(vertical, horizontal int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Inset shrinks r by p. The result never has a negative size.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// SplitHorizontal cuts r into a left part of width left, a gap, and the rest.
func SplitHorizontal(r sdl.Rect, left, gap int32) (sdl.Rect, sdl.Rect) {
	if left > r.W {
		left = r.W
	}
	rest := r.W - left - gap
	if rest < 0 {
		rest = 0
	}
	return sdl.Rect{X: r.X, Y: r.Y, W: left, H: r.H},
		sdl.Rect{X: r.X + left + gap, Y: r.Y, W: rest, H: r.H}
}

// CenterIn returns a w by h rect centered in r.
func CenterIn(r sdl.Rect, w, h int32) sdl.Rect {
	return sdl.Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Percent returns pct percent of v.
func Percent(v int32, pct int32) int32 {
	return v * pct / 100
}
