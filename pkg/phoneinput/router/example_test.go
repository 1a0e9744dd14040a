package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/router"
)

const (
	ScreenForm router.Screen = iota
	ScreenPicker
)

// Example routes between a form and a country picker based on the
// controller state each screen returns.
func Example() {
	c := controller.New(nil, controller.Config{})
	formVisits := 0

	r := router.New[controller.State]()

	r.Register(ScreenForm, func(st controller.State) (controller.State, error) {
		formVisits++
		if formVisits == 1 {
			fmt.Println("Form: opening picker")
			return c.OpenPicker(st), nil
		}
		fmt.Println("Form: number for", st.CountryCode(), "is", c.FormattedText(c.ChangeText(st, "7911123456")))
		return st, nil
	})

	r.Register(ScreenPicker, func(st controller.State) (controller.State, error) {
		fmt.Println("Picker: choosing GB")
		return c.SelectCountry(st, "GB"), nil
	})

	r.OnTransition(func(from router.Screen, st controller.State, history *router.Stack) router.Screen {
		switch {
		case from == ScreenForm && st.PickerOpen():
			history.Push(from)
			return ScreenPicker
		case from == ScreenPicker && !st.PickerOpen():
			return history.Back()
		}
		return router.ScreenExit
	})

	final, _ := r.Run(ScreenForm, c.Initialize(controller.InitOptions{}))
	fmt.Println("Done:", final.CountryCode(), final.Mode())

	// Output:
	// Form: opening picker
	// Picker: choosing GB
	// Form: number for GB is +447911123456
	// Done: GB Idle
}
