package internal

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  int32 = 1024
	devWindowHeight int32 = 768
)

// Window wraps the SDL window and renderer shared by every widget.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := devWindowWidth, devWindowHeight
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	} else if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
		x, y = 0, 0
	} else {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width widgets lay out against.
func (w *Window) GetWidth() int32 {
	width, _ := w.Renderer.GetLogicalSize()
	if width == 0 {
		width, _ = w.Window.GetSize()
	}
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Renderer.GetLogicalSize()
	if height == 0 {
		_, height = w.Window.GetSize()
	}
	return height
}

// Bounds is the full logical drawing area.
func (w *Window) Bounds() sdl.Rect {
	return sdl.Rect{W: w.GetWidth(), H: w.GetHeight()}
}

// Clear fills the frame with c.
func (w *Window) Clear(c color.NRGBA) {
	SetDrawColor(w.Renderer, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	w.Renderer.Clear()
}

// Present swaps the render buffer and holds the frame rate near 60fps
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < uint64(constants.DefaultFrameDelay) {
			sdl.Delay(constants.DefaultFrameDelay - uint32(elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
