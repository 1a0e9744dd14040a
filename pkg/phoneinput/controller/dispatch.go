package controller

// Action is a user gesture or host call that drives a transition.
type Action interface {
	apply(c *Controller, s State) State
}

// OpenPicker requests the country picker.
type OpenPicker struct{}

// ClosePicker dismisses the country picker.
type ClosePicker struct{}

// UpdateSearch changes the picker filter.
type UpdateSearch struct{ Query string }

// SelectCountry picks a country by ISO code.
type SelectCountry struct{ Code string }

// ChangeText replaces the entered number.
type ChangeText struct{ Text string }

// SetDisabled toggles the disabled guard.
type SetDisabled struct{ Disabled bool }

func (OpenPicker) apply(c *Controller, s State) State      { return c.OpenPicker(s) }
func (ClosePicker) apply(c *Controller, s State) State     { return c.ClosePicker(s) }
func (a UpdateSearch) apply(c *Controller, s State) State  { return c.UpdateSearch(s, a.Query) }
func (a SelectCountry) apply(c *Controller, s State) State { return c.SelectCountry(s, a.Code) }
func (a ChangeText) apply(c *Controller, s State) State    { return c.ChangeText(s, a.Text) }
func (a SetDisabled) apply(c *Controller, s State) State   { return c.SetDisabled(s, a.Disabled) }

// Reduce applies a single action to s. A nil action returns s unchanged.
func (c *Controller) Reduce(s State, action Action) State {
	if action == nil {
		return s
	}
	return action.apply(c, s)
}

// Handle owns one State and applies actions to it in place. It is the
// imperative face of a Controller for hosts that do not want to thread State
// values themselves.
type Handle struct {
	controller *Controller
	state      State
}

// NewHandle initializes a State with opts and wraps it.
func NewHandle(c *Controller, opts InitOptions) *Handle {
	return &Handle{
		controller: c,
		state:      c.Initialize(opts),
	}
}

// ResumeHandle wraps an existing State, such as one kept from an earlier
// widget run. The country is re-resolved in c's directory so the calling code
// stays consistent; a country the directory lacks becomes its default.
func ResumeHandle(c *Controller, s State) *Handle {
	record, err := c.directory.ByCode(s.countryCode)
	if err != nil {
		record = c.directory.Default()
	}
	s.countryCode = record.Code
	s.callingCode = record.CallingCode
	return &Handle{controller: c, state: s}
}

// Dispatch applies actions in order and returns the resulting State.
func (h *Handle) Dispatch(actions ...Action) State {
	for _, a := range actions {
		h.state = h.controller.Reduce(h.state, a)
	}
	return h.state
}

// State returns the current State.
func (h *Handle) State() State {
	return h.state
}

// Controller returns the wrapped controller.
func (h *Handle) Controller() *Controller {
	return h.controller
}

// CountryCode returns the selected country code.
func (h *Handle) CountryCode() string {
	return h.controller.CurrentCountryCode(h.state)
}

// CallingCode returns the selected calling code.
func (h *Handle) CallingCode() string {
	return h.controller.CurrentCallingCode(h.state)
}

// FormattedText returns the current formatted number.
func (h *Handle) FormattedText() string {
	return h.controller.FormattedText(h.state)
}

// NormalizedNumber returns the current number without a leading trunk zero.
func (h *Handle) NormalizedNumber() FormattedResult {
	return h.controller.NormalizedNumber(h.state)
}

// IsValid validates the current number.
func (h *Handle) IsValid() bool {
	return h.controller.IsValid(h.state)
}
