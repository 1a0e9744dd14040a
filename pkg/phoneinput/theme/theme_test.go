package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestResolveMergesLeftToRight(t *testing.T) {
	got, err := Resolve(Default(),
		Overrides{InputBackground: "#111111", CodeTextColor: "#222222"},
		Overrides{CodeTextColor: "#333333", FlagShape: FlagShapeSquare, FlagSize: ptr(int32(20))},
	)
	require.NoError(t, err)

	assert.Equal(t, Hex(0x111111), got.InputBackground)
	assert.Equal(t, Hex(0x333333), got.CodeTextColor)
	assert.Equal(t, FlagShapeSquare, got.FlagShape)
	assert.Equal(t, int32(20), got.FlagSize)
	assert.Equal(t, Default().ModalBackground, got.ModalBackground, "untouched fields keep the base value")
}

func TestResolveDoesNotShareState(t *testing.T) {
	base := Default()
	_, err := Resolve(base, Overrides{InputTextColor: "#ABCDEF"})
	require.NoError(t, err)
	assert.Equal(t, Default(), base)
}

func TestResolveRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
	}{
		{"bad color", Overrides{InputBackground: "blue-ish"}},
		{"bad alpha", Overrides{ModalOverlay: "#000000zz"}},
		{"bad shape", Overrides{FlagShape: "hexagon"}},
		{"zero flag size", Overrides{FlagSize: ptr(int32(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(Default(), tt.o)
			require.Error(t, err)
			assert.Equal(t, Default(), got)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FFFFFF", Hex(0xFFFFFF)},
		{"#007aff", Hex(0x007AFF)},
		{"#fff", Hex(0xFFFFFF)},
		{"#00000080", color.NRGBA{A: 0x80}},
		{"transparent", color.NRGBA{}},
		{" Transparent ", color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagRadius(t *testing.T) {
	round := Default()
	assert.Equal(t, int32(15), round.FlagRadius())

	square := Default()
	square.FlagShape = FlagShapeSquare
	square.FlagBorderRadius = 4
	assert.Equal(t, int32(4), square.FlagRadius())

	square.FlagBorderRadius = 999
	assert.Equal(t, int32(15), square.FlagRadius())
}

func TestArrowColor(t *testing.T) {
	th := Default()
	assert.Equal(t, uint8(153), th.ArrowColor().A)

	th.DropdownArrowOpacity = 2
	assert.Equal(t, uint8(255), th.ArrowColor().A)
}

func TestDarkDiffersFromDefault(t *testing.T) {
	assert.NotEqual(t, Default().InputBackground, Dark().InputBackground)
	assert.Equal(t, Default().FlagSize, Dark().FlagSize)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "theme.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
input_background = "#101010"
flag_shape = "square"
flag_border_radius = 6
dropdown_arrow_opacity = 1.0
`), 0o644))

		o, err := LoadOverrides(path)
		require.NoError(t, err)

		got, err := Resolve(Default(), o)
		require.NoError(t, err)
		assert.Equal(t, Hex(0x101010), got.InputBackground)
		assert.Equal(t, FlagShapeSquare, got.FlagShape)
		assert.Equal(t, int32(6), got.FlagRadius())
		assert.Equal(t, 1.0, got.DropdownArrowOpacity)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.toml")
		require.NoError(t, os.WriteFile(path, []byte(`input_backgrund = "#101010"`), 0o644))

		_, err := LoadOverrides(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadOverrides(filepath.Join(dir, "nope.toml"))
		require.Error(t, err)
	})
}
