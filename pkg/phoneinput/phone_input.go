package phoneinput

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/controller"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/keypad"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/labels"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/picker"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/router"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/theme"
)

const (
	screenForm router.Screen = iota
	screenPicker
)

const widgetCacheSize = 160

type formFocus int

const (
	focusCountry formFocus = iota
	focusNumber
	focusKeypad
)

type phoneInputController struct {
	settings PhoneInputSettings
	handle   *controller.Handle
	theme    theme.Theme
	labels   *labels.Labels
	hooks    renderHooks
	cache    *internal.TextureCache
	window   *internal.Window
	repeater *internal.Repeater

	focus       formFocus
	keypad      *keypad.Keypad
	keypadShown bool

	cursorVisible bool
	lastBlink     time.Time
	inputDelay    time.Duration
	lastInputTime time.Time

	picker *picker.List

	submitted bool
	cancelled bool
}

// PhoneInput shows the phone number widget and blocks until the user submits
// or backs out. Callbacks in settings fire while the user edits.
// Returns ErrCancelled if the user leaves without submitting.
func PhoneInput(settings PhoneInputSettings) (*PhoneInputResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("phone_input", ErrNotInitialized)
	}

	settings = settings.withDefaults()

	t, err := settings.resolveTheme(internal.GetTheme())
	if err != nil {
		return nil, NewInfrastructureError("resolve_theme", err)
	}

	pc := newPhoneInputController(settings, t, window)
	defer pc.cache.Destroy()

	start := screenForm
	if pc.handle.State().PickerOpen() {
		start = screenPicker
		pc.picker.Reset(pc.handle.Controller().VisibleCountries(pc.state()), pc.handle.CountryCode())
	}

	r := router.New[*phoneInputController]().
		Register(screenForm, func(pc *phoneInputController) (*phoneInputController, error) {
			return pc, pc.runForm()
		}).
		Register(screenPicker, func(pc *phoneInputController) (*phoneInputController, error) {
			return pc, pc.runPicker()
		}).
		OnEnter(func(screen router.Screen, pc *phoneInputController) {
			pc.repeater.Reset()
			internal.GetInternalLogger().Debug("Phone input screen", "screen", screen, "country", pc.handle.CountryCode())
		}).
		OnTransition(phoneInputTransition)

	if _, err := r.Run(start, pc); err != nil {
		return nil, NewInfrastructureError("render", err)
	}

	if pc.cancelled {
		return nil, ErrCancelled
	}
	return newPhoneInputResult(pc.handle), nil
}

// phoneInputTransition follows the controller: the picker screen runs while
// the picker is open, the form otherwise.
func phoneInputTransition(from router.Screen, pc *phoneInputController, history *router.Stack) router.Screen {
	if pc.submitted || pc.cancelled {
		return router.ScreenExit
	}
	if pc.handle.State().PickerOpen() {
		if from != screenPicker {
			history.Push(from)
		}
		return screenPicker
	}
	if back, ok := history.Pop(); ok {
		return back
	}
	return screenForm
}

func newPhoneInputController(settings PhoneInputSettings, t theme.Theme, window *internal.Window) *phoneInputController {
	ctrl := controller.New(settings.Directory, controller.Config{
		Callbacks: settings.Callbacks,
		Logger:    internal.GetInternalLogger(),
		Validator: settings.Validator,
	})

	var handle *controller.Handle
	if settings.InitialState != nil {
		handle = controller.ResumeHandle(ctrl, *settings.InitialState)
	} else {
		handle = controller.NewHandle(ctrl, controller.InitOptions{
			DefaultCode:  settings.DefaultCode,
			Value:        settings.Value,
			DefaultValue: settings.DefaultValue,
			Disabled:     settings.Disabled,
		})
	}

	pc := &phoneInputController{
		settings:      settings,
		handle:        handle,
		theme:         t,
		labels:        settings.Labels,
		hooks:         detectHooks(settings.Hooks),
		cache:         internal.NewTextureCacheWithSize(widgetCacheSize),
		window:        window,
		repeater:      internal.NewRepeater(),
		keypad:        keypad.New(settings.Labels.Get(labels.HintDone)),
		keypadShown:   settings.ShowKeypad,
		cursorVisible: true,
		lastBlink:     time.Now(),
		inputDelay:    constants.DefaultInputDelay,
		picker:        picker.New(),
	}

	if settings.AutoFocus {
		pc.focus = focusNumber
	}

	return pc
}

func (pc *phoneInputController) done() bool {
	return pc.submitted || pc.cancelled
}

func (pc *phoneInputController) state() controller.State {
	return pc.handle.State()
}

func (pc *phoneInputController) selectedCountry() country.Record {
	return pc.handle.Controller().Country(pc.state())
}

// runForm runs the form until the picker opens or the user leaves.
func (pc *phoneInputController) runForm() error {
	processor := internal.GetInputProcessor()

	for {
		for _, ev := range processor.Poll() {
			pc.handleFormEvent(ev)
			if pc.done() || pc.state().PickerOpen() {
				return nil
			}
		}

		if d := pc.repeater.Next(); d != internal.DirectionNone {
			pc.navigateForm(d)
		}

		pc.updateCursorBlink()

		if err := pc.renderFrame(pc.renderForm); err != nil {
			return err
		}
	}
}

func (pc *phoneInputController) handleFormEvent(ev internal.Event) {
	switch {
	case ev.Quit:
		pc.cancelled = true
		return
	case ev.Text != "":
		pc.typeText(ev.Text)
		return
	}

	if !ev.Pressed {
		pc.repeater.Track(ev.Button, false)
		return
	}

	if ev.Button.IsDirectional() {
		if time.Since(pc.lastInputTime) < pc.inputDelay {
			return
		}
		pc.lastInputTime = time.Now()
		pc.repeater.Track(ev.Button, true)
		pc.navigateForm(internal.DirectionFor(ev.Button))
		return
	}

	switch ev.Button {
	case pc.settings.ConfirmButton:
		pc.confirm()
	case constants.VirtualButtonB:
		if pc.state().Number() == "" || pc.state().Disabled() {
			pc.cancelled = true
			return
		}
		pc.setNumber(keypad.Backspace(pc.state().Number()))
	case constants.VirtualButtonX:
		pc.openPicker()
	case constants.VirtualButtonY:
		pc.toggleKeypad()
	case constants.VirtualButtonSelect:
		pc.setNumber("")
	case constants.VirtualButtonStart:
		pc.submitted = true
	case constants.VirtualButtonMenu:
		pc.cancelled = true
	}
}

func (pc *phoneInputController) typeText(text string) {
	if pc.state().Disabled() {
		return
	}
	if pc.focus == focusCountry {
		pc.focus = focusNumber
	}
	pc.setNumber(keypad.Append(pc.state().Number(), text, pc.settings.MaxLength))
}

func (pc *phoneInputController) setNumber(number string) {
	if number == pc.state().Number() {
		return
	}
	pc.handle.Dispatch(controller.ChangeText{Text: number})
	pc.resetCursorBlink()
}

func (pc *phoneInputController) openPicker() {
	pc.handle.Dispatch(controller.OpenPicker{})
	if pc.state().PickerOpen() {
		pc.picker.Reset(pc.handle.Controller().VisibleCountries(pc.state()), pc.handle.CountryCode())
	}
}

func (pc *phoneInputController) toggleKeypad() {
	pc.keypadShown = !pc.keypadShown
	if pc.keypadShown {
		pc.keypad.Reset()
		return
	}
	if pc.focus == focusKeypad {
		pc.focus = focusNumber
	}
}

func (pc *phoneInputController) confirm() {
	switch pc.focus {
	case focusCountry:
		pc.openPicker()
	case focusNumber:
		pc.submitted = true
	case focusKeypad:
		pc.pressKey(pc.keypad.SelectedKey())
	}
}

func (pc *phoneInputController) pressKey(key keypad.Key) {
	switch key.Kind {
	case keypad.KindText:
		pc.setNumber(keypad.Append(pc.state().Number(), key.Label, pc.settings.MaxLength))
	case keypad.KindBackspace:
		pc.setNumber(keypad.Backspace(pc.state().Number()))
	case keypad.KindDone:
		pc.submitted = true
	}
}

func (pc *phoneInputController) navigateForm(d internal.Direction) {
	switch pc.focus {
	case focusCountry:
		switch d {
		case internal.DirectionRight:
			pc.focus = focusNumber
		case internal.DirectionDown:
			pc.enterKeypad()
		}
	case focusNumber:
		switch d {
		case internal.DirectionLeft:
			pc.focus = focusCountry
		case internal.DirectionDown:
			pc.enterKeypad()
		}
	case focusKeypad:
		if !pc.keypad.Navigate(keypadMove(d)) {
			pc.focus = focusNumber
		}
	}
}

func (pc *phoneInputController) enterKeypad() {
	if pc.keypadShown && !pc.state().Disabled() {
		pc.focus = focusKeypad
	}
}

func keypadMove(d internal.Direction) keypad.Move {
	switch d {
	case internal.DirectionUp:
		return keypad.MoveUp
	case internal.DirectionDown:
		return keypad.MoveDown
	case internal.DirectionLeft:
		return keypad.MoveLeft
	default:
		return keypad.MoveRight
	}
}

func (pc *phoneInputController) updateCursorBlink() {
	if time.Since(pc.lastBlink) >= constants.DefaultCursorBlinkRate {
		pc.cursorVisible = !pc.cursorVisible
		pc.lastBlink = time.Now()
	}
}

func (pc *phoneInputController) resetCursorBlink() {
	pc.cursorVisible = true
	pc.lastBlink = time.Now()
}

// renderFrame draws one frame. A panicking render hook ends the widget with
// an error instead of taking the host down.
func (pc *phoneInputController) renderFrame(draw func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render hook panicked: %v", r)
		}
	}()

	draw()
	pc.window.Present()
	return nil
}
