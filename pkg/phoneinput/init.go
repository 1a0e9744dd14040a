// Package phoneinput is an SDL phone number input for handheld Linux devices
// and desktop windows: a country button with flag and calling code, a number
// field, an optional on-screen keypad and a searchable country picker.
//
// Call Init once, then PhoneInput for each number to collect. The interaction
// rules live in the controller package and can be driven without SDL.
package phoneinput

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/platform/cannoli"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
)

// Options configures Init.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	IsCannoli            bool                   // Use the Cannoli theme and font
	DarkTheme            bool                   // Start from the dark theme
	PrimaryThemeColorHex uint32                 // Custom accent color, 0 keeps the theme's
	ThemeFile            string                 // TOML theme overrides applied to every widget
	FontPath             string                 // TTF for all text, overrides the theme's
	Language             string                 // Label language (BCP 47); empty uses PHONEINPUT_LANG
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	KeypadDevice         string                 // evdev node of a hardware keypad, e.g. /dev/input/event3
	GrabKeypad           bool                   // Take exclusive access to KeypadDevice
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

var labelLanguage string

// Init starts SDL, opens the window and loads the theme and fonts.
// Must be called before PhoneInput.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)
	labelLanguage = options.Language

	base, err := baseTheme(options)
	if err != nil {
		return NewInfrastructureError("load_theme", err)
	}
	internal.SetTheme(base)

	kc := internal.KeypadConfig{DevicePath: options.KeypadDevice, Grab: options.GrabKeypad}
	if err := internal.Init(options.WindowTitle, options.WindowOptions, kc); err != nil {
		return NewInfrastructureError("init", err)
	}

	internal.GetInternalLogger().Debug("Phone input initialized",
		"cannoli", options.IsCannoli, "dark", options.DarkTheme, "language", options.Language)
	return nil
}

func baseTheme(options Options) (theme.Theme, error) {
	var t theme.Theme
	switch {
	case options.IsCannoli:
		t = cannoli.Theme(cannoli.FontPath)
	case options.DarkTheme:
		t = theme.Dark()
	default:
		t = theme.Default()
	}

	if options.PrimaryThemeColorHex != 0 {
		t = theme.WithAccent(t, options.PrimaryThemeColorHex)
	}

	if options.ThemeFile != "" {
		overrides, err := theme.LoadOverrides(options.ThemeFile)
		if err != nil {
			return t, err
		}
		if t, err = theme.Resolve(t, overrides); err != nil {
			return t, err
		}
	}

	if options.FontPath != "" {
		t.FontPath = options.FontPath
	}
	return t, nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// Can also be set via the FLIP_FACE_BUTTONS environment variable.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// BaseTheme returns the theme every widget starts from.
func BaseTheme() theme.Theme {
	return internal.GetTheme()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
