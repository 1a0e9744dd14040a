// Package cannoli provides the phone input theme for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
)

// FontPath is where Cannoli installs its UI font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Theme returns Cannoli's colors with square flags and the given font.
func Theme(fontPath string) theme.Theme {
	t := theme.Dark()
	t.ContainerBackground = theme.Hex(0x000000)
	t.InputBackground = theme.Hex(0x1A1A1A)
	t.ModalBackground = theme.Hex(0x111111)
	t.InputTextColor = theme.Hex(0xFFFFFF)
	t.LabelTextColor = theme.Hex(0xFFFFFF)
	t.CodeTextColor = theme.Hex(0x008080)
	t.DropdownTextColor = theme.Hex(0x008080)
	t.InputBorderColor = theme.Hex(0x008080)
	t.SelectionColor = theme.Hex(0x008080)
	t.HighlightColor = theme.Hex(0xFFFFFF)
	t.HighlightedTextColor = theme.Hex(0x000000)
	t.DropdownArrowColor = theme.Hex(0xFFFFFF)
	t.FlagShape = theme.FlagShapeSquare
	t.FlagBorderRadius = 4
	t.FontPath = fontPath
	return t
}
