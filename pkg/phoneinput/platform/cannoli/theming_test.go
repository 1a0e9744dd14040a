package cannoli

import (
	"testing"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	got := Theme(FontPath)

	assert.Equal(t, FontPath, got.FontPath)
	assert.Equal(t, theme.Hex(0x008080), got.SelectionColor)
	assert.Equal(t, theme.FlagShapeSquare, got.FlagShape)
	assert.Equal(t, int32(4), got.FlagRadius())
}
