package internal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FillRoundedRect fills r with c, rounding corners to radius.
func FillRoundedRect(renderer *sdl.Renderer, r sdl.Rect, radius int32, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 || c.A == 0 {
		return
	}
	radius = clampRadius(r, radius)
	SetDrawColor(renderer, c)

	if radius == 0 {
		renderer.FillRect(&r)
		return
	}

	rows := make([]sdl.Rect, 0, r.H)
	for dy := int32(0); dy < r.H; dy++ {
		inset := cornerInset(dy, r.H, radius)
		rows = append(rows, sdl.Rect{X: r.X + inset, Y: r.Y + dy, W: r.W - 2*inset, H: 1})
	}
	renderer.FillRects(rows)
}

// StrokeRoundedRect draws a one pixel outline of r.
func StrokeRoundedRect(renderer *sdl.Renderer, r sdl.Rect, radius int32, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 || c.A == 0 {
		return
	}
	radius = clampRadius(r, radius)
	SetDrawColor(renderer, c)

	if radius == 0 {
		renderer.DrawRect(&r)
		return
	}

	points := make([]sdl.Point, 0, r.H*2+r.W*2)
	prevInset := cornerInset(0, r.H, radius)
	for dy := int32(0); dy < r.H; dy++ {
		inset := cornerInset(dy, r.H, radius)
		left, right := r.X+inset, r.X+r.W-1-inset
		points = append(points, sdl.Point{X: left, Y: r.Y + dy}, sdl.Point{X: right, Y: r.Y + dy})

		// Close gaps where the curve moves more than a pixel between rows.
		from, to := prevInset, inset
		if from > to {
			from, to = to, from
		}
		for x := from + 1; x < to; x++ {
			points = append(points, sdl.Point{X: r.X + x, Y: r.Y + dy}, sdl.Point{X: r.X + r.W - 1 - x, Y: r.Y + dy})
		}
		prevInset = inset
	}
	top, bottom := r.Y, r.Y+r.H-1
	for x := r.X + radius; x < r.X+r.W-radius; x++ {
		points = append(points, sdl.Point{X: x, Y: top}, sdl.Point{X: x, Y: bottom})
	}
	renderer.DrawPoints(points)
}

func clampRadius(r sdl.Rect, radius int32) int32 {
	limit := r.W
	if r.H < limit {
		limit = r.H
	}
	if radius > limit/2 {
		radius = limit / 2
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

// cornerInset is how far row dy of a rounded rect starts from its edge.
func cornerInset(dy, height, radius int32) int32 {
	var fromEdge int32
	switch {
	case dy < radius:
		fromEdge = radius - dy
	case dy >= height-radius:
		fromEdge = dy - (height - radius - 1)
	default:
		return 0
	}
	r := float64(radius)
	y := float64(fromEdge) - 0.5
	return radius - int32(math.Round(math.Sqrt(math.Max(0, r*r-y*y))))
}

// DrawShadow draws a soft-edged drop shadow under r.
func DrawShadow(renderer *sdl.Renderer, r sdl.Rect, radius int32, c color.NRGBA) {
	const layers = 4
	for i := int32(layers); i > 0; i-- {
		layer := c
		layer.A = uint8(uint32(c.A) * uint32(layers-i+1) / (layers * 2))
		FillRoundedRect(renderer, sdl.Rect{X: r.X - i + 2, Y: r.Y - i + 4, W: r.W + 2*i - 4, H: r.H + 2*i - 4}, radius+i, layer)
	}
}

// TextWidth measures text in font. Errors measure as zero.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// TruncateText shortens text with an ellipsis until it fits maxWidth.
func TruncateText(font *ttf.Font, text string, maxWidth int32) string {
	if TextWidth(font, text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if TextWidth(font, candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// Text returns a cached texture of text and its size.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, col color.NRGBA) (*sdl.Texture, int32, int32) {
	if text == "" {
		return nil, 0, 0
	}

	key := fmt.Sprintf("text|%p|%02x%02x%02x%02x|%s", font, col.R, col.G, col.B, col.A, text)
	if texture := c.Get(key); texture != nil {
		_, _, w, h, err := texture.Query()
		if err == nil {
			return texture, w, h
		}
	}

	surface, err := font.RenderUTF8Blended(text, ToSDL(col))
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "error", err)
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Debug("Failed to create text texture", "error", err)
		return nil, 0, 0
	}
	if col.A < 0xFF {
		texture.SetAlphaMod(col.A)
	}

	c.Set(key, texture)
	return texture, surface.W, surface.H
}

// DrawText draws text with its top-left corner at x, y and returns its width.
func (c *TextureCache) DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, col color.NRGBA) int32 {
	texture, w, h := c.Text(renderer, font, text, col)
	if texture == nil {
		return 0
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w
}

// DrawTextIn draws text vertically centered in r with the given alignment,
// truncating it to fit.
func (c *TextureCache) DrawTextIn(renderer *sdl.Renderer, font *ttf.Font, text string, r sdl.Rect, align constants.TextAlign, col color.NRGBA) int32 {
	text = TruncateText(font, text, r.W)
	texture, w, h := c.Text(renderer, font, text, col)
	if texture == nil {
		return 0
	}

	x := r.X
	switch align {
	case constants.TextAlignCenter:
		x = r.X + (r.W-w)/2
	case constants.TextAlignRight:
		x = r.X + r.W - w
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: r.Y + (r.H-h)/2, W: w, H: h})
	return w
}
