package router

// Stack records the screens a user navigated through, most recent last.
type Stack struct {
	screens []Screen
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{screens: make([]Screen, 0)}
}

// Push records screen as visited.
func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the most recent screen.
// It returns ScreenExit and false when the stack is empty.
func (s *Stack) Pop() (Screen, bool) {
	if len(s.screens) == 0 {
		return ScreenExit, false
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top, true
}

// Back pops the most recent screen, or returns ScreenExit when there is none.
func (s *Stack) Back() Screen {
	screen, _ := s.Pop()
	return screen
}

// Peek returns the most recent screen without removing it.
func (s *Stack) Peek() (Screen, bool) {
	if len(s.screens) == 0 {
		return ScreenExit, false
	}
	return s.screens[len(s.screens)-1], true
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.screens) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.screens)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.screens = s.screens[:0]
}
