package internal

import (
	"os"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/internal/stick"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is one translated input event. Either Button is set, Text carries
// typed characters, or Quit asks the widget to stop.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Text    string
	Quit    bool
}

// InputProcessor turns SDL events and hardware keypad events into Events.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
	axes            map[sdl.GameControllerAxis]*stick.Axis
	keypad          <-chan Event
}

var (
	processor       *InputProcessor
	flipFaceButtons bool
)

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_KP_ENTER:  constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_TAB:       constants.VirtualButtonX,
	sdl.K_F1:        constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_F10:       constants.VirtualButtonStart,
	sdl.K_DELETE:    constants.VirtualButtonSelect,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) instead
// of the Nintendo-style swap. FLIP_FACE_BUTTONS in the environment also
// enables it. Call before Init.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

// InitInputProcessor opens attached game controllers and starts SDL text
// input. keypad may be nil.
func InitInputProcessor(keypad <-chan Event) {
	processor = &InputProcessor{
		flipFaceButtons: flipFaceButtons || os.Getenv("FLIP_FACE_BUTTONS") != "",
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
		axes: map[sdl.GameControllerAxis]*stick.Axis{
			sdl.CONTROLLER_AXIS_LEFTX: stick.NewAxis(constants.VirtualButtonLeft, constants.VirtualButtonRight),
			sdl.CONTROLLER_AXIS_LEFTY: stick.NewAxis(constants.VirtualButtonUp, constants.VirtualButtonDown),
		},
		keypad: keypad,
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}

	sdl.StartTextInput()
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// CloseAllControllers closes every open game controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, gc := range processor.controllers {
		gc.Close()
		delete(processor.controllers, id)
	}
	sdl.StopTextInput()
}

func (ip *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	ip.controllers[id] = gc
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", gc.Name())
}

// Poll drains pending SDL and keypad events.
func (ip *InputProcessor) Poll() []Event {
	var events []Event

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, ip.ProcessSDLEvent(event)...)
	}

	for {
		select {
		case ev, ok := <-ip.keypad:
			if !ok {
				ip.keypad = nil
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

// ProcessSDLEvent translates a single SDL event. A stick swept across its
// range yields a release and a press.
func (ip *InputProcessor) ProcessSDLEvent(event sdl.Event) []Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return []Event{{Quit: true}}

	case *sdl.TextInputEvent:
		return []Event{{Text: e.GetText()}}

	case *sdl.KeyboardEvent:
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return []Event{{Button: button, Pressed: e.State == sdl.PRESSED}}

	case *sdl.ControllerButtonEvent:
		button, ok := ip.mapControllerButton(sdl.GameControllerButton(e.Button))
		if !ok {
			return nil
		}
		return []Event{{Button: button, Pressed: e.State == sdl.PRESSED}}

	case *sdl.ControllerAxisEvent:
		return ip.processAxis(sdl.GameControllerAxis(e.Axis), e.Value)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			ip.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if gc, ok := ip.controllers[e.Which]; ok {
				gc.Close()
				delete(ip.controllers, e.Which)
			}
		}
	}

	return nil
}

func (ip *InputProcessor) mapControllerButton(b sdl.GameControllerButton) (constants.VirtualButton, bool) {
	if ip.flipFaceButtons {
		switch b {
		case sdl.CONTROLLER_BUTTON_A:
			return constants.VirtualButtonA, true
		case sdl.CONTROLLER_BUTTON_B:
			return constants.VirtualButtonB, true
		case sdl.CONTROLLER_BUTTON_X:
			return constants.VirtualButtonX, true
		case sdl.CONTROLLER_BUTTON_Y:
			return constants.VirtualButtonY, true
		}
	}
	button, ok := controllerMapping[b]
	return button, ok
}

// processAxis turns the left stick into d-pad presses and releases.
func (ip *InputProcessor) processAxis(axis sdl.GameControllerAxis, value int16) []Event {
	a, ok := ip.axes[axis]
	if !ok {
		return nil
	}

	var events []Event
	for _, c := range a.Update(value) {
		events = append(events, Event{Button: c.Button, Pressed: c.Pressed})
	}
	return events
}
