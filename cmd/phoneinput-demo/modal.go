package main

import (
	"image/color"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// compactModal replaces the country picker with a full screen list that
// shows calling codes first.
type compactModal struct{}

func (compactModal) RenderCountryModal(ctx phoneinput.RenderContext, m phoneinput.ModalView) bool {
	r := ctx.Renderer
	t := ctx.Theme
	font := ctx.Font
	lineHeight := int32(font.Height()) * 3 / 2

	fill(r, m.Bounds, t.ModalBackground)

	y := m.Bounds.Y + lineHeight/2
	title := m.Title
	if m.ShowSearch && m.SearchText != "" {
		title = m.Title + ": " + m.SearchText
	}
	drawText(r, font, title, m.Bounds.X+lineHeight/2, y, t.LabelTextColor)
	y += lineHeight * 3 / 2

	if len(m.Countries) == 0 {
		return true
	}

	last := m.FirstRow + m.VisibleRows
	if last > len(m.Countries) {
		last = len(m.Countries)
	}

	for i := m.FirstRow; i < last && y+lineHeight <= m.Bounds.H; i++ {
		c := m.Countries[i]
		textColor := t.InputTextColor
		if i == m.Focused {
			fill(r, sdl.Rect{X: m.Bounds.X, Y: y, W: m.Bounds.W, H: lineHeight}, t.HighlightColor)
			textColor = t.HighlightedTextColor
		}
		textY := y + (lineHeight-int32(font.Height()))/2
		drawText(r, font, c.FormattedCallingCode(), m.Bounds.X+lineHeight/2, textY, textColor)
		drawText(r, font, c.Name, m.Bounds.X+lineHeight*4, textY, textColor)
		y += lineHeight
	}
	return true
}

func fill(r *sdl.Renderer, rect sdl.Rect, c color.NRGBA) {
	r.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.FillRect(&rect)
}

func drawText(r *sdl.Renderer, font *ttf.Font, text string, x, y int32, c color.NRGBA) {
	if text == "" {
		return
	}
	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	r.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}
