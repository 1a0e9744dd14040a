package stick

import (
	"testing"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/constants"
	"github.com/stretchr/testify/assert"
)

func TestUpdatePressAndRelease(t *testing.T) {
	a := NewAxis(constants.VirtualButtonLeft, constants.VirtualButtonRight)

	assert.Empty(t, a.Update(1000))
	assert.Equal(t, []Change{{Button: constants.VirtualButtonRight, Pressed: true}}, a.Update(DefaultThreshold))
	assert.Empty(t, a.Update(30000))
	assert.Equal(t, constants.VirtualButtonRight, a.Held())

	assert.Equal(t, []Change{{Button: constants.VirtualButtonRight, Pressed: false}}, a.Update(0))
	assert.Equal(t, constants.VirtualButtonUnassigned, a.Held())
}

func TestUpdateSweepAcross(t *testing.T) {
	a := NewAxis(constants.VirtualButtonUp, constants.VirtualButtonDown)
	a.Update(-32768)

	changes := a.Update(32767)

	assert.Equal(t, []Change{
		{Button: constants.VirtualButtonUp, Pressed: false},
		{Button: constants.VirtualButtonDown, Pressed: true},
	}, changes)
	assert.Equal(t, constants.VirtualButtonDown, a.Held())
}
