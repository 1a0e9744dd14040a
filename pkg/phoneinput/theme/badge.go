package theme

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FlagBadgeColor is the fill used for a country's flag placeholder when no
// flag artwork is drawn. The same code always gets the same color.
func FlagBadgeColor(code string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(code)))
	hue := float64(h.Sum32() % 360)

	r, g, b := colorful.Hsv(hue, 0.45, 0.80).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// ContrastText returns black or white, whichever reads better on bg.
func ContrastText(bg color.NRGBA) color.NRGBA {
	c, _ := colorful.MakeColor(color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xFF})
	l, _, _ := c.Lab()
	if l > 0.6 {
		return Hex(0x000000)
	}
	return Hex(0xFFFFFF)
}

// WithAccent recolors the selection and highlight colors.
func WithAccent(t Theme, rgb uint32) Theme {
	accent := Hex(rgb)
	t.SelectionColor = accent
	t.HighlightColor = accent
	t.HighlightedTextColor = ContrastText(accent)
	return t
}
