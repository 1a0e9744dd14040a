package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagBadgeColorIsStable(t *testing.T) {
	assert.Equal(t, FlagBadgeColor("GB"), FlagBadgeColor("gb"))
	assert.Equal(t, uint8(0xFF), FlagBadgeColor("GB").A)
	assert.NotEqual(t, FlagBadgeColor("GB"), FlagBadgeColor("CA"))
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, Hex(0x000000), ContrastText(Hex(0xFFFFFF)))
	assert.Equal(t, Hex(0xFFFFFF), ContrastText(Hex(0x000000)))
	assert.Equal(t, Hex(0xFFFFFF), ContrastText(Hex(0x007AFF)))
}

func TestWithAccent(t *testing.T) {
	got := WithAccent(Default(), 0xFFCC00)

	assert.Equal(t, Hex(0xFFCC00), got.SelectionColor)
	assert.Equal(t, Hex(0xFFCC00), got.HighlightColor)
	assert.Equal(t, Hex(0x000000), got.HighlightedTextColor)
	assert.Equal(t, Default().InputBackground, got.InputBackground)
}
