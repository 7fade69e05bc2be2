package stopwatch

import (
	"errors"
	"fmt"
)

// InvalidStateError reports Start on a running stopwatch or Stop on one that
// is not running. It signals misuse by the caller; the stopwatch is left
// unchanged.
type InvalidStateError struct {
	// Op is the operation that was rejected ("start" or "stop").
	Op string

	// Reason describes the state that made Op invalid.
	Reason string
}

const (
	reasonAlreadyRunning = "already running"
	reasonNotRunning     = "not running"
)

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("stopwatch: %s: %s", e.Op, e.Reason)
}

// IsInvalidState returns true if err is, or wraps, an InvalidStateError.
func IsInvalidState(err error) bool {
	var ise *InvalidStateError
	return errors.As(err, &ise)
}

func errAlreadyRunning() *InvalidStateError {
	return &InvalidStateError{Op: "start", Reason: reasonAlreadyRunning}
}

func errNotRunning() *InvalidStateError {
	return &InvalidStateError{Op: "stop", Reason: reasonNotRunning}
}
