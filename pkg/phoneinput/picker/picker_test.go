package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
)

func records(codes ...string) []country.Record {
	out := make([]country.Record, len(codes))
	for i, c := range codes {
		out[i] = country.Record{Code: c}
	}
	return out
}

func codes(rs []country.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Code
	}
	return out
}

func TestEmpty(t *testing.T) {
	l := New()
	l.Move(1)
	l.Page(1)

	assert.Equal(t, -1, l.Focused())
	_, ok := l.FocusedRecord()
	assert.False(t, ok)
	assert.Empty(t, l.Window())
}

func TestResetFocusesSelectedCountry(t *testing.T) {
	l := New()
	l.Resize(3)
	l.Reset(records("AD", "AE", "AF", "AG", "AI", "AL"), "AI")

	assert.Equal(t, 4, l.Focused())
	assert.Equal(t, 2, l.Top())
	assert.Equal(t, []string{"AF", "AG", "AI"}, codes(l.Window()))

	l.SetRows(records("GB", "GE"))
	assert.Equal(t, 0, l.Focused())
	assert.Equal(t, 0, l.Top())
}

func TestMoveWrapsSingleSteps(t *testing.T) {
	l := New()
	l.Resize(2)
	l.Reset(records("A1", "A2", "A3"), "")

	l.Move(-1)
	assert.Equal(t, 2, l.Focused())
	assert.Equal(t, []string{"A2", "A3"}, codes(l.Window()))

	l.Move(1)
	assert.Equal(t, 0, l.Focused())
	assert.Equal(t, 0, l.Top())
}

func TestPageStopsAtEnds(t *testing.T) {
	l := New()
	l.Resize(2)
	l.Reset(records("A1", "A2", "A3", "A4", "A5"), "")

	l.Page(1)
	assert.Equal(t, 2, l.Focused())
	l.Page(1)
	l.Page(1)
	assert.Equal(t, 4, l.Focused())
	assert.Equal(t, []string{"A4", "A5"}, codes(l.Window()))

	l.Page(-1)
	l.Page(-1)
	l.Page(-1)
	assert.Equal(t, 0, l.Focused())
}

func TestResizeKeepsFocusVisible(t *testing.T) {
	l := New()
	l.Resize(5)
	l.Reset(records("A1", "A2", "A3", "A4", "A5", "A6"), "A5")
	require.Equal(t, 0, l.Top())

	l.Resize(2)
	assert.Equal(t, []string{"A4", "A5"}, codes(l.Window()))

	l.Resize(10)
	assert.Equal(t, 0, l.Top())
	assert.Len(t, l.Window(), 6)
}
