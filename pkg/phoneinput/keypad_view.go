package phoneinput

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/icons"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/keypad"
)

// renderKeypad draws the on-screen keypad below the input row. It is skipped
// when the window is too short to fit it.
func (pc *phoneInputController) renderKeypad(l formLayout) {
	if l.keypad.H < keypad.Rows*l.unit*2 {
		return
	}

	renderer := pc.window.Renderer
	grid := internal.CalculateKeypadGrid(l.keypad, keypad.Rows, keypad.Cols)
	disabled := pc.state().Disabled()

	for i, key := range pc.keypad.Keys() {
		rect := grid.KeyRect(key.Row, key.Col)
		rect.W = int32(key.Span)*grid.KeyWidth + int32(key.Span-1)*grid.Spacing

		selected := pc.focus == focusKeypad && i == pc.keypad.Selected()

		bg, fg := pc.theme.InputBackground, pc.theme.InputTextColor
		switch {
		case selected:
			bg, fg = pc.theme.HighlightColor, pc.theme.HighlightedTextColor
		case disabled:
			fg = pc.theme.PlaceholderTextColor
		case key.Kind == keypad.KindDone:
			fg = pc.theme.SelectionColor
		}

		internal.FillRoundedRect(renderer, rect, l.radius, bg)
		internal.StrokeRoundedRect(renderer, rect, l.radius, pc.theme.InputBorderColor)

		switch key.Kind {
		case keypad.KindBackspace:
			pc.cache.DrawIcon(renderer, icons.Backspace, internal.UniformPadding(rect.H/4).Inset(rect), fg)
		default:
			pc.cache.DrawTextIn(renderer, internal.Fonts.MediumFont, key.Label, rect, constants.TextAlignCenter, fg)
		}
	}
}
