//go:build linux

package internal

import (
	"fmt"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// keypadDigits maps number row and numpad keys to the text they type.
var keypadDigits = map[evdev.EvCode]string{
	evdev.KEY_0: "0", evdev.KEY_1: "1", evdev.KEY_2: "2", evdev.KEY_3: "3", evdev.KEY_4: "4",
	evdev.KEY_5: "5", evdev.KEY_6: "6", evdev.KEY_7: "7", evdev.KEY_8: "8", evdev.KEY_9: "9",
	evdev.KEY_KP0: "0", evdev.KEY_KP1: "1", evdev.KEY_KP2: "2", evdev.KEY_KP3: "3", evdev.KEY_KP4: "4",
	evdev.KEY_KP5: "5", evdev.KEY_KP6: "6", evdev.KEY_KP7: "7", evdev.KEY_KP8: "8", evdev.KEY_KP9: "9",
	evdev.KEY_KPPLUS: "+",
}

var keypadButtons = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:        constants.VirtualButtonUp,
	evdev.KEY_DOWN:      constants.VirtualButtonDown,
	evdev.KEY_LEFT:      constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:     constants.VirtualButtonRight,
	evdev.KEY_ENTER:     constants.VirtualButtonA,
	evdev.KEY_KPENTER:   constants.VirtualButtonA,
	evdev.KEY_BACKSPACE: constants.VirtualButtonB,
	evdev.KEY_ESC:       constants.VirtualButtonMenu,
}

// KeypadReader reads a hardware keypad straight from its evdev node, for
// devices whose keypad is not routed through SDL.
type KeypadReader struct {
	path    string
	device  *evdev.InputDevice
	events  chan Event
	running *atomic.Bool
}

// OpenKeypad opens the evdev device at path and starts reading it.
// With grab set, other readers stop receiving its events.
func OpenKeypad(path string, grab bool) (*KeypadReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keypad %s: %w", path, err)
	}

	if grab {
		if err := device.Grab(); err != nil {
			GetInternalLogger().Warn("Failed to grab keypad", "path", path, "error", err)
		}
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Keypad opened", "path", path, "name", name)

	k := &KeypadReader{
		path:    path,
		device:  device,
		events:  make(chan Event, 32),
		running: atomic.NewBool(true),
	}
	go k.run()
	return k, nil
}

// Events is closed once the reader stops.
func (k *KeypadReader) Events() <-chan Event {
	return k.events
}

func (k *KeypadReader) run() {
	defer close(k.events)

	for k.running.Load() {
		ev, err := k.device.ReadOne()
		if err != nil {
			if k.running.Load() {
				GetInternalLogger().Error("Keypad read failed", "path", k.path, "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		translated, ok := translateKeypad(ev.Code, ev.Value)
		if !ok {
			continue
		}

		select {
		case k.events <- translated:
		default:
			GetInternalLogger().Debug("Keypad event dropped", "code", ev.Code)
		}
	}
}

// translateKeypad handles press (1), release (0) and autorepeat (2) values.
func translateKeypad(code evdev.EvCode, value int32) (Event, bool) {
	if text, ok := keypadDigits[code]; ok {
		if value == 0 {
			return Event{}, false
		}
		return Event{Text: text}, true
	}

	if button, ok := keypadButtons[code]; ok {
		switch value {
		case 1:
			return Event{Button: button, Pressed: true}, true
		case 0:
			return Event{Button: button, Pressed: false}, true
		}
	}
	return Event{}, false
}

// Close stops the reader and releases the device.
func (k *KeypadReader) Close() error {
	if !k.running.CompareAndSwap(true, false) {
		return nil
	}
	return k.device.Close()
}
