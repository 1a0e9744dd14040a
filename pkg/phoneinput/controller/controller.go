// Package controller implements the interaction rules of the phone input:
// which country is selected, what the user typed, whether the country picker
// is open and which callbacks fire when any of that changes.
//
// The controller holds no widget state itself. Every operation takes a State
// value and returns the next one, so a rendering layer keeps a single State,
// feeds it through the controller on each gesture, and redraws from the
// result. Handle wraps that loop for hosts that prefer an imperative object.
//
// All operations are synchronous and must be called from the goroutine that
// delivers input events for the widget.
package controller

import (
	"errors"
	"io"
	"log/slog"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/validate"
)

// Callbacks are the host notifications. Any of them may be nil.
//
// When a transition fires more than one callback, OnChangeCountry or
// OnChangeText always runs before OnChangeFormattedText.
type Callbacks struct {
	OnChangeCountry       func(country.Record)
	OnChangeText          func(text string)
	OnChangeFormattedText func(formatted string)
}

// Validator decides whether a number is valid for a country code.
type Validator func(number, countryCode string) bool

// Config configures a Controller.
type Config struct {
	Callbacks Callbacks
	Logger    *slog.Logger // Defaults to a discarding logger
	Validator Validator    // Defaults to validate.IsValid
}

// InitOptions seeds the initial State.
type InitOptions struct {
	DefaultCode  string // Starting country; unknown or empty codes fall back to the directory default
	Value        string // Starting number; takes precedence over DefaultValue
	DefaultValue string // Starting number used when Value is empty
	Disabled     bool
}

// Controller applies transitions to State values.
type Controller struct {
	directory *country.Directory
	callbacks Callbacks
	validator Validator
	logger    *slog.Logger
}

// New creates a Controller over dir. A nil dir uses the bundled directory.
func New(dir *country.Directory, cfg Config) *Controller {
	if dir == nil {
		dir = country.Bundled()
	}

	c := &Controller{
		directory: dir,
		callbacks: cfg.Callbacks,
		validator: cfg.Validator,
		logger:    cfg.Logger,
	}

	if c.validator == nil {
		c.validator = validate.IsValid
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}

// Directory returns the directory the controller resolves countries in.
func (c *Controller) Directory() *country.Directory {
	return c.directory
}

// Initialize builds the starting State. It never fails: an absent or unknown
// country code resolves to the directory default. The number is kept verbatim.
func (c *Controller) Initialize(opts InitOptions) State {
	record, err := c.directory.ByCode(opts.DefaultCode)
	if err != nil {
		if opts.DefaultCode != "" {
			c.logger.Debug("Unknown default country, using fallback",
				"requested", opts.DefaultCode, "fallback", c.directory.Default().Code)
		}
		record = c.directory.Default()
	}

	number := opts.Value
	if number == "" {
		number = opts.DefaultValue
	}

	return State{
		countryCode: record.Code,
		callingCode: record.CallingCode,
		number:      number,
		disabled:    opts.Disabled,
	}
}

// OpenPicker shows the country picker. The search query is left as is.
func (c *Controller) OpenPicker(s State) State {
	if s.disabled {
		c.logger.Debug("Ignoring open picker while disabled")
		return s
	}
	s.pickerOpen = true
	return s
}

// ClosePicker hides the picker and clears the search query. Closing an already
// closed picker is harmless.
func (c *Controller) ClosePicker(s State) State {
	s.pickerOpen = false
	s.searchQuery = ""
	return s
}

// UpdateSearch replaces the picker filter text.
func (c *Controller) UpdateSearch(s State, query string) State {
	s.searchQuery = query
	return s
}

// SelectCountry switches to the country with code, closes the picker and
// notifies OnChangeCountry then OnChangeFormattedText. Unknown codes and
// disabled states leave s untouched and fire nothing.
func (c *Controller) SelectCountry(s State, code string) State {
	if s.disabled {
		c.logger.Debug("Ignoring country selection while disabled", "code", code)
		return s
	}

	record, err := c.directory.ByCode(code)
	if err != nil {
		if errors.Is(err, country.ErrNotFound) {
			c.logger.Debug("Ignoring selection of unknown country", "code", code)
		}
		return s
	}

	s.countryCode = record.Code
	s.callingCode = record.CallingCode
	s.pickerOpen = false
	s.searchQuery = ""

	if c.callbacks.OnChangeCountry != nil {
		c.callbacks.OnChangeCountry(record)
	}
	if c.callbacks.OnChangeFormattedText != nil {
		c.callbacks.OnChangeFormattedText(c.FormattedText(s))
	}

	return s
}

// ChangeText replaces the number with text, unfiltered, and notifies
// OnChangeText then OnChangeFormattedText.
func (c *Controller) ChangeText(s State, text string) State {
	if s.disabled {
		c.logger.Debug("Ignoring text change while disabled")
		return s
	}

	s.number = text

	if c.callbacks.OnChangeText != nil {
		c.callbacks.OnChangeText(text)
	}
	if c.callbacks.OnChangeFormattedText != nil {
		c.callbacks.OnChangeFormattedText(c.FormattedText(s))
	}

	return s
}

// SetDisabled replaces the disabled flag. An open picker stays open.
func (c *Controller) SetDisabled(s State, disabled bool) State {
	s.disabled = disabled
	return s
}

// CurrentCountryCode returns the selected country code.
func (c *Controller) CurrentCountryCode(s State) string {
	return s.countryCode
}

// CurrentCallingCode returns the selected calling code.
func (c *Controller) CurrentCallingCode(s State) string {
	return s.callingCode
}

// Country returns the selected country record.
func (c *Controller) Country(s State) country.Record {
	record, err := c.directory.ByCode(s.countryCode)
	if err != nil {
		return c.directory.Default()
	}
	return record
}

// FormattedText is the value reported to OnChangeFormattedText: "" for an empty
// number, otherwise "+" + calling code + number.
func (c *Controller) FormattedText(s State) string {
	return format(s.callingCode, s.number)
}

// NormalizedNumber drops a single leading trunk-prefix zero before formatting,
// so "07911123456" under "44" becomes "+447911123456".
func (c *Controller) NormalizedNumber(s State) FormattedResult {
	number := s.number
	if len(number) > 0 && number[0] == '0' {
		number = number[1:]
	}
	return FormattedResult{
		Number:          number,
		FormattedNumber: format(s.callingCode, number),
	}
}

// IsValid validates the current number against the selected country.
func (c *Controller) IsValid(s State) bool {
	return c.validator(s.number, s.countryCode)
}

// VisibleCountries returns the picker rows for the current search query.
func (c *Controller) VisibleCountries(s State) []country.Record {
	return c.directory.Search(s.searchQuery)
}
