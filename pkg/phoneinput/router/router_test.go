package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenA Screen = iota
	screenB
	screenC
)

func TestRunPassesValueThroughScreens(t *testing.T) {
	var entered []Screen

	r := New[[]string]().
		Register(screenA, func(v []string) ([]string, error) { return append(v, "a"), nil }).
		Register(screenB, func(v []string) ([]string, error) { return append(v, "b"), nil }).
		OnEnter(func(s Screen, _ []string) { entered = append(entered, s) }).
		OnTransition(func(from Screen, v []string, history *Stack) Screen {
			switch from {
			case screenA:
				if len(v) > 2 {
					return ScreenExit
				}
				history.Push(from)
				return screenB
			case screenB:
				return history.Back()
			}
			return ScreenExit
		})

	got, err := r.Run(screenA, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, got)
	assert.Equal(t, []Screen{screenA, screenB, screenA}, entered)
	assert.True(t, r.History().IsEmpty())
}

func TestRunWithoutTransition(t *testing.T) {
	_, err := New[int]().Register(screenA, func(v int) (int, error) { return v, nil }).Run(screenA, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transition function")
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New[int]().OnTransition(func(Screen, int, *Stack) Screen { return ScreenExit })
	_, err := r.Run(screenC, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestRunScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New[int]().
		Register(screenA, func(v int) (int, error) { return v + 1, nil }).
		Register(screenB, func(v int) (int, error) { return 0, boom }).
		OnTransition(func(from Screen, _ int, _ *Stack) Screen {
			if from == screenA {
				return screenB
			}
			return ScreenExit
		})

	got, err := r.Run(screenA, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, got, "value from the last successful screen is kept")
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, ScreenExit, s.Back())

	s.Push(screenA)
	s.Push(screenB)
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, screenB, top)

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, screenB, popped)

	s.Clear()
	_, ok = s.Pop()
	assert.False(t, ok)
}
