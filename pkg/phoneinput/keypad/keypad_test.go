package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeysCoverGrid(t *testing.T) {
	k := New("Done")
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			assert.GreaterOrEqual(t, k.keyAt(row, col), 0, "cell %d,%d", row, col)
		}
	}
	assert.Equal(t, "1", k.SelectedKey().Label)
}

func TestNavigate(t *testing.T) {
	k := New("Done")

	require.True(t, k.Navigate(MoveRight))
	assert.Equal(t, "2", k.SelectedKey().Label)

	require.True(t, k.Navigate(MoveDown))
	require.True(t, k.Navigate(MoveDown))
	assert.Equal(t, "8", k.SelectedKey().Label)

	require.True(t, k.Navigate(MoveDown))
	assert.Equal(t, "0", k.SelectedKey().Label)

	require.True(t, k.Navigate(MoveDown))
	assert.Equal(t, KindDone, k.SelectedKey().Kind)

	require.True(t, k.Navigate(MoveDown), "bottom row stays put")
	assert.Equal(t, KindDone, k.SelectedKey().Kind)

	require.True(t, k.Navigate(MoveUp))
	assert.Equal(t, "0", k.SelectedKey().Label, "returns to the column it came from")
}

func TestNavigateWraps(t *testing.T) {
	k := New("Done")

	require.True(t, k.Navigate(MoveLeft))
	assert.Equal(t, "3", k.SelectedKey().Label)

	require.True(t, k.Navigate(MoveRight))
	assert.Equal(t, "1", k.SelectedKey().Label)
}

func TestNavigateUpLeaves(t *testing.T) {
	k := New("Done")
	require.True(t, k.Navigate(MoveRight))

	assert.False(t, k.Navigate(MoveUp))
	assert.Equal(t, "2", k.SelectedKey().Label)

	k.Reset()
	assert.Equal(t, 0, k.Selected())
}

func TestFilter(t *testing.T) {
	assert.Equal(t, "+1 (415) 555-0132", Filter("+1 (415) 555-0132"))
	assert.Equal(t, "07911", Filter("07a9b11"))
	assert.Equal(t, "", Filter("é"))
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name   string
		number string
		text   string
		max    int
		want   string
	}{
		{"plain", "79", "11", 20, "7911"},
		{"filtered", "", "0x7", 20, "07"},
		{"truncated", "123", "4567", 5, "12345"},
		{"full", "12345", "6", 5, "12345"},
		{"unlimited", "1", "23", 0, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Append(tt.number, tt.text, tt.max))
		})
	}
}

func TestBackspace(t *testing.T) {
	assert.Equal(t, "", Backspace(""))
	assert.Equal(t, "791", Backspace("7911"))
	assert.Equal(t, "12", Backspace("12€"))
}
