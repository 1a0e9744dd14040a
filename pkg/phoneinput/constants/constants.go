// Package constants defines shared constants, types, and configuration values
// used throughout the phone input widget.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the widget.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"      // DEV runs in a window instead of fullscreen
	WindowWidthEnvVar  = "WINDOW_WIDTH"     // Window width in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"    // Window height in dev mode
	DebugEnvVar        = "PHONEINPUT_DEBUG" // Any value enables internal debug logging
	FontPathEnvVar     = "PHONEINPUT_FONT"  // Font used when the theme has none
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an abstract input button, mapped from keyboards,
// game controllers and hardware keypads.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA      // Confirm / select
	VirtualButtonB      // Back / backspace
	VirtualButtonX      // Open the country picker
	VirtualButtonY      // Toggle the on-screen keypad
	VirtualButtonL1     // Page up in the picker
	VirtualButtonR1     // Page down in the picker
	VirtualButtonStart  // Submit the number
	VirtualButtonSelect // Clear the number
	VirtualButtonMenu   // Leave the widget
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// IsDirectional reports whether vb is one of the d-pad buttons.
func (vb VirtualButton) IsDirectional() bool {
	return vb >= VirtualButtonUp && vb <= VirtualButtonRight
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and sizing constants.
const (
	DefaultInputDelay             = 20 * time.Millisecond // Debounce delay between input events
	DefaultCursorBlinkRate        = 500 * time.Millisecond
	DefaultFrameDelay      uint32 = 16 // Milliseconds between frames when idle
	DefaultMaxNumberLength        = 20 // Longest number accepted from the keypad
)
