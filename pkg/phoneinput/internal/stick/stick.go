// Package stick turns analog stick positions into d-pad presses.
package stick

import "github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"

// DefaultThreshold is how far the stick must move before it counts as a press.
const DefaultThreshold = 16000

// Change is a d-pad press or release produced by the stick.
type Change struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Axis tracks one stick axis.
type Axis struct {
	negative  constants.VirtualButton
	positive  constants.VirtualButton
	threshold int16
	held      constants.VirtualButton
}

// NewAxis maps negative values to negative and positive values to positive.
func NewAxis(negative, positive constants.VirtualButton) *Axis {
	return &Axis{negative: negative, positive: positive, threshold: DefaultThreshold}
}

// Held is the button the axis is holding down, or VirtualButtonUnassigned.
func (a *Axis) Held() constants.VirtualButton {
	return a.held
}

// Update feeds a new axis value. Sweeping from one side straight to the
// other releases the old direction and presses the new one.
func (a *Axis) Update(value int16) []Change {
	next := constants.VirtualButtonUnassigned
	switch {
	case value <= -a.threshold:
		next = a.negative
	case value >= a.threshold:
		next = a.positive
	}

	if next == a.held {
		return nil
	}

	var changes []Change
	if a.held != constants.VirtualButtonUnassigned {
		changes = append(changes, Change{Button: a.held, Pressed: false})
	}
	if next != constants.VirtualButtonUnassigned {
		changes = append(changes, Change{Button: next, Pressed: true})
	}
	a.held = next
	return changes
}
