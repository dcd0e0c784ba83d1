package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for lifecycle transitions whose guard
// failed. These errors are terminal for the request; the store is never
// written when one is returned.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports a rejected lifecycle transition. Guard names
// the violated precondition (e.g. "post not yet accepted by an NGO") so the
// caller can report it verbatim to the end user.
type InvalidTransitionError struct {
	Transition string
	Guard      string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the named
// transition and the guard that rejected it.
func NewInvalidTransitionError(transition, guard string) *InvalidTransitionError {
	return &InvalidTransitionError{Transition: transition, Guard: guard}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidTransition, sanitize(e.Transition), sanitize(e.Guard))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
