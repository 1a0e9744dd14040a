// Package icons rasterizes the widget's SVG icons into tinted images.
package icons

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Name identifies a bundled icon.
type Name string

const (
	ChevronDown Name = "chevron-down"
	Search      Name = "search"
	Backspace   Name = "backspace"
	Globe       Name = "globe"
)

var sources = map[Name]string{
	ChevronDown: constants.ChevronDownSVG,
	Search:      constants.SearchSVG,
	Backspace:   constants.BackspaceSVG,
	Globe:       constants.GlobeSVG,
}

// Rasterize draws the named icon into a size x size image in color c.
func Rasterize(name Name, size int, c color.NRGBA) (*image.NRGBA, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	return RasterizeSVG(src, size, c)
}

// RasterizeSVG draws arbitrary SVG markup. The markup's own colors are
// ignored: its coverage becomes the alpha of c.
func RasterizeSVG(src string, size int, c color.NRGBA) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	mask := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, mask, mask.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	out := image.NewNRGBA(mask.Bounds())
	for i := 0; i < len(mask.Pix); i += 4 {
		coverage := uint32(mask.Pix[i+3])
		out.Pix[i] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
		out.Pix[i+3] = uint8(coverage * uint32(c.A) / 0xFF)
	}
	return out, nil
}
