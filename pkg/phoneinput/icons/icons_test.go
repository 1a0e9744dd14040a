package icons

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeTintsCoverage(t *testing.T) {
	tint := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}

	for _, name := range []Name{ChevronDown, Search, Backspace, Globe} {
		img, err := Rasterize(name, 24, tint)
		require.NoError(t, err, name)
		assert.Equal(t, 24, img.Bounds().Dx())
		assert.Equal(t, 24, img.Bounds().Dy())

		var covered int
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i+3] == 0 {
				continue
			}
			covered++
			assert.Equal(t, []uint8{0x10, 0x20, 0x30}, img.Pix[i:i+3])
		}
		assert.Positive(t, covered, "%s draws something", name)
	}
}

func TestRasterizeAppliesAlpha(t *testing.T) {
	full, err := Rasterize(ChevronDown, 32, color.NRGBA{A: 0xFF})
	require.NoError(t, err)
	half, err := Rasterize(ChevronDown, 32, color.NRGBA{A: 0x80})
	require.NoError(t, err)

	for i := 3; i < len(full.Pix); i += 4 {
		assert.LessOrEqual(t, half.Pix[i], full.Pix[i])
	}
}

func TestRasterizeErrors(t *testing.T) {
	_, err := Rasterize("missing", 24, color.NRGBA{})
	assert.Error(t, err)

	_, err = Rasterize(ChevronDown, 0, color.NRGBA{})
	assert.Error(t, err)
}
