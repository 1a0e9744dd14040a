package internal

import (
	"time"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
)

// Direction is a d-pad direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Default auto-repeat timing for held directions.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond
	DefaultRepeatInterval = 50 * time.Millisecond
)

// DirectionFor maps a d-pad button to its Direction.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// Repeater auto-repeats a held direction: the first repeat fires after
// delay, later ones every interval. Up wins over down, down over left, left
// over right when several are held.
type Repeater struct {
	held     [5]bool
	since    time.Time
	repeated bool
	delay    time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(DefaultRepeatDelay, DefaultRepeatInterval)
}

func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	return &Repeater{delay: delay, interval: interval, now: time.Now, since: time.Now()}
}

// Track records a press or release. It reports whether button is a d-pad
// button.
func (r *Repeater) Track(button constants.VirtualButton, pressed bool) bool {
	d := DirectionFor(button)
	if d == DirectionNone {
		return false
	}
	r.held[d] = pressed
	r.repeated = false
	r.since = r.now()
	return true
}

func (r *Repeater) heldDirection() Direction {
	for d := DirectionUp; d <= DirectionRight; d++ {
		if r.held[d] {
			return d
		}
	}
	return DirectionNone
}

// Next returns the direction to apply this frame, or DirectionNone.
func (r *Repeater) Next() Direction {
	d := r.heldDirection()
	if d == DirectionNone {
		return DirectionNone
	}

	threshold := r.interval
	if !r.repeated {
		threshold = r.delay
	}

	now := r.now()
	if now.Sub(r.since) < threshold {
		return DirectionNone
	}

	r.since = now
	r.repeated = true
	return d
}

// Reset releases every direction.
func (r *Repeater) Reset() {
	r.held = [5]bool{}
	r.repeated = false
	r.since = r.now()
}
