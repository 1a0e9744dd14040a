package country

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a country code is not in the directory.
var ErrNotFound = errors.New("country not found")

// ConfigError reports a dataset that cannot form a valid Directory.
// It is raised at startup only; a Directory, once built, never fails.
type ConfigError struct {
	Reason string // What is wrong with the dataset
	Code   string // Offending country code, if any
	Err    error  // Underlying decode error, if any
}

func (e *ConfigError) Error() string {
	msg := "country: " + e.Reason
	if e.Code != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a dataset configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

func notFound(code string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, code)
}
