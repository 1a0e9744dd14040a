package phoneinput

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderContext is handed to every render hook.
type RenderContext struct {
	Renderer *sdl.Renderer
	Font     *ttf.Font // Medium UI font
	Theme    theme.Theme
	Disabled bool
}

// InputView is what the number field shows.
type InputView struct {
	Value       string
	Placeholder string
	CallingCode string // Set when the layout draws the code inside the field
	Focused     bool
	Disabled    bool
}

// ModalView is what the country picker shows.
type ModalView struct {
	Title       string
	Countries   []country.Record // Already filtered by the search text
	SearchText  string
	ShowSearch  bool
	Focused     int // Index into Countries, -1 when the list is empty
	FirstRow    int // Index of the first visible row
	VisibleRows int
	Bounds      sdl.Rect // Whole screen; the hook draws its own overlay
}

// The interfaces below are optional. The widget checks PhoneInputSettings.Hooks
// for each one and calls it in place of its own drawing. A hook returning
// false falls back to the built-in rendering for that call. Input handling
// stays with the widget.

// FlagRenderer draws the flag of the selected country inside the country button.
type FlagRenderer interface {
	RenderFlag(ctx RenderContext, c country.Record, dst sdl.Rect) bool
}

// InputRenderer draws the number field.
type InputRenderer interface {
	RenderInput(ctx RenderContext, in InputView, dst sdl.Rect) bool
}

// CountryItemRenderer draws one picker row.
type CountryItemRenderer interface {
	RenderCountryItem(ctx RenderContext, c country.Record, dst sdl.Rect, focused bool) bool
}

// DropdownIconRenderer draws the arrow on the country button.
type DropdownIconRenderer interface {
	RenderDropdownIcon(ctx RenderContext, dst sdl.Rect) bool
}

// CountryModalRenderer draws the whole country picker.
type CountryModalRenderer interface {
	RenderCountryModal(ctx RenderContext, m ModalView) bool
}

// renderHooks holds the hooks found on PhoneInputSettings.Hooks.
type renderHooks struct {
	flag     FlagRenderer
	input    InputRenderer
	item     CountryItemRenderer
	dropdown DropdownIconRenderer
	modal    CountryModalRenderer
}

func detectHooks(h any) renderHooks {
	var hooks renderHooks
	if h == nil {
		return hooks
	}
	hooks.flag, _ = h.(FlagRenderer)
	hooks.input, _ = h.(InputRenderer)
	hooks.item, _ = h.(CountryItemRenderer)
	hooks.dropdown, _ = h.(DropdownIconRenderer)
	hooks.modal, _ = h.(CountryModalRenderer)
	return hooks
}
