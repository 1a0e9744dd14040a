// Package router runs a sequence of screens with one explicit transition
// function deciding where to go next.
//
// A single value of type S travels through every screen: each screen receives
// it, lets the user act on it and returns the updated value. The phone input
// uses it with controller.State to move between the form and the country
// picker; the demo uses it to move between the variant menu, the widget and
// the summary.
//
// # Basic Usage
//
//	const (
//	    ScreenForm router.Screen = iota
//	    ScreenPicker
//	)
//
//	r := router.New[controller.State]()
//	r.Register(ScreenForm, runForm)
//	r.Register(ScreenPicker, runPicker)
//
//	r.OnTransition(func(from router.Screen, st controller.State, history *router.Stack) router.Screen {
//	    switch {
//	    case from == ScreenForm && st.PickerOpen():
//	        history.Push(from)
//	        return ScreenPicker
//	    case from == ScreenPicker && !st.PickerOpen():
//	        return history.Back()
//	    }
//	    return router.ScreenExit
//	})
//
//	final, err := r.Run(ScreenForm, initial)
//
// # History
//
// Push the current screen before moving forward and call Back to return to
// it. Back on an empty history yields ScreenExit, so "back from the first
// screen" exits the router without a special case.
package router
