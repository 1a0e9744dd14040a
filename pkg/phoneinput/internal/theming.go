package internal

import (
	"image/color"
	"sync"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
	"github.com/veandco/go-sdl2/sdl"
)

// The base theme chosen at Init. Widgets copy it and apply their own
// overrides, so it is only written during setup.
var (
	themeMu   sync.RWMutex
	baseTheme = theme.Default()
)

// SetTheme sets the base theme every widget starts from.
func SetTheme(t theme.Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	baseTheme = t
}

// GetTheme returns a copy of the base theme.
func GetTheme() theme.Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return baseTheme
}

// ToSDL converts a theme color to an SDL color.
func ToSDL(c color.NRGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SetDrawColor sets the renderer's draw color from a theme color.
func SetDrawColor(renderer *sdl.Renderer, c color.NRGBA) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}
