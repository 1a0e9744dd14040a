// Package theme describes the colors and flag styling of the phone input.
//
// Each widget resolves its own Theme from a base (Default or Dark) and any
// number of Overrides applied left to right. Nothing here is global: two
// widgets on the same screen can carry different themes.
package theme

import "image/color"

// FlagShape controls how flags are clipped.
type FlagShape string

const (
	FlagShapeRound  FlagShape = "round"
	FlagShapeSquare FlagShape = "square"
)

// Theme is a fully resolved set of visual settings.
type Theme struct {
	ScreenBackground    color.NRGBA // Fills the window
	ContainerBackground color.NRGBA // Panel behind the label and input row, transparent by default
	InputBackground     color.NRGBA // Country button and text field
	ModalBackground     color.NRGBA // Country picker panel
	ModalOverlay        color.NRGBA // Dimming layer behind the picker

	LabelTextColor       color.NRGBA // "Mobile number" label
	InputTextColor       color.NRGBA // Typed number and country names
	PlaceholderTextColor color.NRGBA
	CodeTextColor        color.NRGBA // "+44" next to the flag or inside the field
	DropdownTextColor    color.NRGBA // Calling codes in picker rows

	InputBorderColor color.NRGBA
	ModalBorderColor color.NRGBA // Picker row separators

	SelectionColor       color.NRGBA // Cursor and focused outline
	HighlightColor       color.NRGBA // Focused picker row background
	HighlightedTextColor color.NRGBA // Text on the focused picker row
	ShadowColor          color.NRGBA // Used when the widget is drawn with a shadow

	FlagBorderRadius int32
	FlagSize         int32
	FlagShape        FlagShape

	DropdownArrowColor   color.NRGBA
	DropdownArrowOpacity float64

	FontPath string // TTF used for all text; must contain flag glyphs to draw emoji flags
}

// Hex converts 0xRRGGBB to an opaque color.
func Hex(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}

// Default is the light theme.
func Default() Theme {
	return Theme{
		ScreenBackground:    Hex(0xF2F2F7),
		ContainerBackground: color.NRGBA{},
		InputBackground:     Hex(0xFFFFFF),
		ModalBackground:     Hex(0xFFFFFF),
		ModalOverlay:        color.NRGBA{A: 0x80},

		LabelTextColor:       Hex(0x666666),
		InputTextColor:       Hex(0x000000),
		PlaceholderTextColor: Hex(0x999999),
		CodeTextColor:        Hex(0x666666),
		DropdownTextColor:    Hex(0x666666),

		InputBorderColor: Hex(0xE5E5E5),
		ModalBorderColor: Hex(0xEEEEEE),

		SelectionColor:       Hex(0x007AFF),
		HighlightColor:       Hex(0x007AFF),
		HighlightedTextColor: Hex(0xFFFFFF),
		ShadowColor:          color.NRGBA{A: 0x66},

		FlagBorderRadius: 999,
		FlagSize:         30,
		FlagShape:        FlagShapeRound,

		DropdownArrowColor:   Hex(0x666666),
		DropdownArrowOpacity: 0.6,
	}
}

// Dark is the dark variant used for withDarkTheme.
func Dark() Theme {
	t := Default()
	t.ScreenBackground = Hex(0x000000)
	t.ContainerBackground = Hex(0x000000)
	t.InputBackground = Hex(0x1C1C1E)
	t.ModalBackground = Hex(0x2C2C2E)
	t.ModalOverlay = color.NRGBA{A: 0xB3}
	t.LabelTextColor = Hex(0xAEAEB2)
	t.InputTextColor = Hex(0xFFFFFF)
	t.PlaceholderTextColor = Hex(0x636366)
	t.CodeTextColor = Hex(0xAEAEB2)
	t.DropdownTextColor = Hex(0xAEAEB2)
	t.InputBorderColor = Hex(0x3A3A3C)
	t.ModalBorderColor = Hex(0x3A3A3C)
	t.SelectionColor = Hex(0x0A84FF)
	t.HighlightColor = Hex(0x0A84FF)
	t.DropdownArrowColor = Hex(0xAEAEB2)
	return t
}

// FlagRadius returns the corner radius to clip a flag of the theme's size.
func (t Theme) FlagRadius() int32 {
	if t.FlagShape == FlagShapeRound {
		return t.FlagSize / 2
	}
	if t.FlagBorderRadius > t.FlagSize/2 {
		return t.FlagSize / 2
	}
	return t.FlagBorderRadius
}

// ArrowColor is the dropdown arrow color with its opacity applied.
func (t Theme) ArrowColor() color.NRGBA {
	c := t.DropdownArrowColor
	opacity := t.DropdownArrowOpacity
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
