package phoneinput

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/labels"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
)

// Layout selects where the calling code is drawn.
type Layout int

const (
	LayoutCodeInInput    Layout = iota // "+44" at the start of the text field
	LayoutCodeInSelector               // "+44" inside the country button, after the flag
	LayoutCodeWithFlag                 // "+44" right next to the flag, wider country button
)

func (l Layout) String() string {
	switch l {
	case LayoutCodeInInput:
		return "codeInInput"
	case LayoutCodeInSelector:
		return "codeInSelector"
	case LayoutCodeWithFlag:
		return "codeWithFlag"
	default:
		return "unknown"
	}
}

// ParseLayout accepts the names returned by Layout.String.
func ParseLayout(s string) (Layout, bool) {
	for _, l := range []Layout{LayoutCodeInInput, LayoutCodeInSelector, LayoutCodeWithFlag} {
		if l.String() == s {
			return l, true
		}
	}
	return LayoutCodeInInput, false
}

// PhoneInputSettings configures one PhoneInput call.
type PhoneInputSettings struct {
	// Directory to pick countries from. Nil uses the bundled directory.
	Directory *country.Directory
	// DefaultCode is the starting country (ISO alpha-2). Unknown codes fall
	// back to the directory default.
	DefaultCode string
	// Value is the starting number; DefaultValue is used when Value is empty.
	Value        string
	DefaultValue string
	Disabled     bool

	// Callbacks fire as the user edits. See controller.Callbacks for ordering.
	Callbacks controller.Callbacks
	// Validator overrides the phone number validator used for the result.
	Validator controller.Validator
	// InitialState resumes a previous result's State instead of DefaultCode
	// and Value. The directory must be the one that produced it.
	InitialState *controller.State

	Layout Layout

	// Text overrides; empty strings use the translated defaults.
	Label             string
	Placeholder       string
	SearchPlaceholder string
	PickerTitle       string
	Labels            *labels.Labels // Nil uses labels.New with the Init language

	HideLabel        bool
	DisableArrowIcon bool
	HideSearch       bool
	WithShadow       bool
	WithDarkTheme    bool
	// AutoFocus starts with the number field focused instead of the country button.
	AutoFocus bool
	// ShowKeypad starts with the on-screen numeric keypad visible.
	ShowKeypad bool
	// HideFooter hides the button hints.
	HideFooter bool

	// ThemeOverrides are applied left to right on top of the base theme.
	ThemeOverrides []theme.Overrides

	// Hooks may implement any of FlagRenderer, InputRenderer,
	// CountryItemRenderer, DropdownIconRenderer and CountryModalRenderer.
	Hooks any

	// ConfirmButton submits from the number field (default: VirtualButtonA).
	ConfirmButton constants.VirtualButton
	// MaxLength caps the number length (default: constants.DefaultMaxNumberLength).
	MaxLength int
}

func (s PhoneInputSettings) withDefaults() PhoneInputSettings {
	if s.ConfirmButton == constants.VirtualButtonUnassigned {
		s.ConfirmButton = constants.VirtualButtonA
	}
	if s.MaxLength <= 0 {
		s.MaxLength = constants.DefaultMaxNumberLength
	}
	if s.Labels == nil {
		s.Labels = labels.New(labelLanguage)
	}
	return s
}

// resolveTheme builds this widget's theme from the base theme, the dark
// variant when asked for, and the overrides.
func (s PhoneInputSettings) resolveTheme(base theme.Theme) (theme.Theme, error) {
	if s.WithDarkTheme {
		dark := theme.Dark()
		dark.FontPath = base.FontPath
		base = dark
	}
	return theme.Resolve(base, s.ThemeOverrides...)
}
