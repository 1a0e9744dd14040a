package internal

import "github.com/veandco/go-sdl2/sdl"

// KeypadGrid positions the keys of the on-screen numeric keypad.
// It is computed once per frame from the area the keypad may occupy.
type KeypadGrid struct {
	Area      sdl.Rect
	Rows      int
	Cols      int
	KeyWidth  int32
	KeyHeight int32
	Spacing   int32
}

// CalculateKeypadGrid fits rows x cols square-ish keys into area, centered
// horizontally. Keys are never wider than twice their height.
func CalculateKeypadGrid(area sdl.Rect, rows, cols int) KeypadGrid {
	spacing := area.H / 40
	if spacing < 4 {
		spacing = 4
	}

	keyHeight := (area.H - spacing*int32(rows-1)) / int32(rows)
	keyWidth := (area.W - spacing*int32(cols-1)) / int32(cols)
	if keyWidth > keyHeight*2 {
		keyWidth = keyHeight * 2
	}

	gridWidth := keyWidth*int32(cols) + spacing*int32(cols-1)

	return KeypadGrid{
		Area:      sdl.Rect{X: area.X + (area.W-gridWidth)/2, Y: area.Y, W: gridWidth, H: area.H},
		Rows:      rows,
		Cols:      cols,
		KeyWidth:  keyWidth,
		KeyHeight: keyHeight,
		Spacing:   spacing,
	}
}

// KeyRect returns the rectangle of the key at row, col.
func (g KeypadGrid) KeyRect(row, col int) sdl.Rect {
	return sdl.Rect{
		X: g.Area.X + int32(col)*(g.KeyWidth+g.Spacing),
		Y: g.Area.Y + int32(row)*(g.KeyHeight+g.Spacing),
		W: g.KeyWidth,
		H: g.KeyHeight,
	}
}
