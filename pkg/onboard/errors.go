package onboard

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotRequired indicates the persisted record shows onboarding was
	// already completed. This is normal flow control for the caller that
	// decides whether to show onboarding at all.
	ErrNotRequired = errors.New("onboarding already completed")
)

// InvariantError reports a programmer error inside the flow, such as a
// backward move with no cached view. These never occur under correct use
// and are not retried.
type InvariantError struct {
	Op  string // Operation that failed (e.g., "advance", "new_pager")
	Err error  // Underlying error
}

func (e *InvariantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("onboard: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("onboard: %s", e.Op)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// NewInvariantError creates a new invariant error.
func NewInvariantError(op string, err error) *InvariantError {
	return &InvariantError{Op: op, Err: err}
}

// IsInvariantError checks if an error is an invariant error.
func IsInvariantError(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}

// IsNotRequired checks if an error indicates onboarding is not needed.
func IsNotRequired(err error) bool {
	return errors.Is(err, ErrNotRequired)
}
