package router

import "fmt"

// Screen identifies a screen. Applications define their own constants.
type Screen int

// ScreenExit is returned from a TransitionFunc to stop the router.
const ScreenExit Screen = -1

// ScreenFunc runs a screen to completion. It receives the value carried
// between screens and returns the updated value.
type ScreenFunc[S any] func(value S) (S, error)

// TransitionFunc picks the next screen once a screen has returned.
// It sees the screen that just ran, the value it returned and the history of
// visited screens, and may push or pop the history to model back navigation.
type TransitionFunc[S any] func(from Screen, value S, history *Stack) Screen

// Router runs screens one after another, passing a single value of type S
// through them. All routing decisions live in one TransitionFunc.
type Router[S any] struct {
	screens    map[Screen]ScreenFunc[S]
	transition TransitionFunc[S]
	history    *Stack
	onEnter    func(Screen, S)
}

// New creates an empty Router.
func New[S any]() *Router[S] {
	return &Router[S]{
		screens: make(map[Screen]ScreenFunc[S]),
		history: NewStack(),
	}
}

// Register adds or replaces a screen.
func (r *Router[S]) Register(screen Screen, fn ScreenFunc[S]) *Router[S] {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function.
func (r *Router[S]) OnTransition(fn TransitionFunc[S]) *Router[S] {
	r.transition = fn
	return r
}

// OnEnter registers a hook called before each screen runs.
func (r *Router[S]) OnEnter(fn func(Screen, S)) *Router[S] {
	r.onEnter = fn
	return r
}

// Run starts at start and returns the last value once the transition function
// yields ScreenExit. If a screen fails, Run returns the value it had before
// that screen along with the error.
func (r *Router[S]) Run(start Screen, value S) (S, error) {
	if r.transition == nil {
		return value, fmt.Errorf("router: no transition function set")
	}

	current := start
	for {
		fn, ok := r.screens[current]
		if !ok {
			return value, fmt.Errorf("router: screen %d not registered", current)
		}

		if r.onEnter != nil {
			r.onEnter(current, value)
		}

		next, err := fn(value)
		if err != nil {
			return value, fmt.Errorf("router: screen %d: %w", current, err)
		}
		value = next

		current = r.transition(current, value, r.history)
		if current == ScreenExit {
			return value, nil
		}
	}
}

// History returns the navigation history.
func (r *Router[S]) History() *Stack {
	return r.history
}
