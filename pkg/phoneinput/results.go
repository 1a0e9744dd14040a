package phoneinput

import (
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

// PhoneInputResult is the widget's final state.
type PhoneInputResult struct {
	Country       country.Record
	CountryCode   string // ISO alpha-2
	CallingCode   string // Without '+'
	Number        string // As typed
	FormattedText string // "+" + calling code + number, or "" when empty
	Normalized    controller.FormattedResult
	Valid         bool
	State         controller.State // Final controller state, for hosts that re-open the widget
}

func newPhoneInputResult(h *controller.Handle) *PhoneInputResult {
	c := h.Controller()
	s := h.State()
	return &PhoneInputResult{
		Country:       c.Country(s),
		CountryCode:   h.CountryCode(),
		CallingCode:   h.CallingCode(),
		Number:        s.Number(),
		FormattedText: h.FormattedText(),
		Normalized:    h.NormalizedNumber(),
		Valid:         h.IsValid(),
		State:         s,
	}
}
