package controller

// Mode is the visible mode of the widget.
type Mode int

const (
	ModeIdle       Mode = iota // Form shown, picker closed
	ModePickerOpen             // Country picker shown
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModePickerOpen:
		return "PickerOpen"
	default:
		return "Unknown"
	}
}

// State is the whole interactive state of one phone input.
// It is a value: transitions return a new State and never modify the one
// they were given.
type State struct {
	countryCode string
	callingCode string
	number      string
	pickerOpen  bool
	searchQuery string
	disabled    bool
}

// CountryCode is the selected ISO alpha-2 code. It always resolves in the
// controller's directory.
func (s State) CountryCode() string { return s.countryCode }

// CallingCode is the selected country's calling code, without '+'.
func (s State) CallingCode() string { return s.callingCode }

// Number is the text as entered, without any normalization.
func (s State) Number() string { return s.number }

// PickerOpen reports whether the country picker is visible.
func (s State) PickerOpen() bool { return s.pickerOpen }

// SearchQuery is the picker filter text. It is empty whenever the picker is closed
// through a transition.
func (s State) SearchQuery() string { return s.searchQuery }

// Disabled reports whether country selection and text entry are blocked.
func (s State) Disabled() bool { return s.disabled }

// Mode derives the widget mode from the picker flag.
func (s State) Mode() Mode {
	if s.pickerOpen {
		return ModePickerOpen
	}
	return ModeIdle
}

// FormattedResult is a number paired with its international form.
type FormattedResult struct {
	Number          string
	FormattedNumber string
}

// format prefixes number with "+callingCode". An empty number stays empty so
// a bare "+44" is never produced.
func format(callingCode, number string) string {
	if number == "" || callingCode == "" {
		return number
	}
	return "+" + callingCode + number
}
