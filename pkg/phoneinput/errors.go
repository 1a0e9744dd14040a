package phoneinput

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of the widget.
// This is a normal flow control error, not an infrastructure failure.
var ErrCancelled = errors.New("phone input cancelled by user")

// ErrNotInitialized is wrapped by components called before Init.
var ErrNotInitialized = errors.New("Init was not called")

// InfrastructureError reports a failure of the widget itself (SDL could not
// start, no font could be loaded, a render hook panicked) rather than
// anything the user did.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("phoneinput: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("phoneinput: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
