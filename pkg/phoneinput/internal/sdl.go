package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// KeypadConfig names an optional evdev keypad to read alongside SDL input.
type KeypadConfig struct {
	DevicePath string
	Grab       bool
}

var keypad *KeypadReader

// Init brings up SDL, the window, fonts and input. The base theme must be
// set first since it names the font.
func Init(title string, winOpts WindowOptions, kc KeypadConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, window.GetHeight()); err != nil {
		window.closeWindow()
		window = nil
		ttf.Quit()
		sdl.Quit()
		return fmt.Errorf("load fonts: %w", err)
	}

	var keypadEvents <-chan Event
	if kc.DevicePath != "" {
		k, err := OpenKeypad(kc.DevicePath, kc.Grab)
		if err != nil {
			GetInternalLogger().Warn("Hardware keypad unavailable", "path", kc.DevicePath, "error", err)
		} else {
			keypad = k
			keypadEvents = k.Events()
		}
	}

	InitInputProcessor(keypadEvents)
	return nil
}

func SDLCleanup() {
	if keypad != nil {
		keypad.Close()
		keypad = nil
	}
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
