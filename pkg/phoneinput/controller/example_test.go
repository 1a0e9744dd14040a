package controller_test

import (
	"fmt"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

// Example shows the callback order when a user picks a country and then types.
func Example() {
	c := controller.New(country.Bundled(), controller.Config{
		Callbacks: controller.Callbacks{
			OnChangeCountry: func(r country.Record) {
				fmt.Println("country:", r.Code)
			},
			OnChangeText: func(text string) {
				fmt.Println("text:", text)
			},
			OnChangeFormattedText: func(formatted string) {
				fmt.Printf("formatted: %q\n", formatted)
			},
		},
	})

	state := c.Initialize(controller.InitOptions{})
	state = c.OpenPicker(state)
	state = c.UpdateSearch(state, "kingdom")
	state = c.SelectCountry(state, "GB")
	state = c.ChangeText(state, "07911123456")

	fmt.Println("normalized:", c.NormalizedNumber(state).FormattedNumber)

	// Output:
	// country: GB
	// formatted: ""
	// text: 07911123456
	// formatted: "+4407911123456"
	// normalized: +447911123456
}

// ExampleHandle drives the same flow through the imperative handle.
func ExampleHandle() {
	h := controller.NewHandle(controller.New(nil, controller.Config{}), controller.InitOptions{DefaultCode: "FR"})

	h.Dispatch(
		controller.ChangeText{Text: "0612345678"},
		controller.OpenPicker{},
	)
	fmt.Println(h.State().Mode(), h.FormattedText())

	h.Dispatch(controller.ClosePicker{})
	fmt.Println(h.State().Mode(), h.NormalizedNumber().FormattedNumber)

	// Output:
	// PickerOpen +330612345678
	// Idle +33612345678
}
