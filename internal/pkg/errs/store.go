package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is the sentinel for transient infrastructure
	// failures (timeouts, lost connections). Callers may retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConflictingUpdate is the sentinel for guarded writes that lost a
	// concurrent race. The aggregate changed between read and write; callers
	// may re-read and retry.
	ErrConflictingUpdate = errors.New("conflicting update")
)

// StoreUnavailableError indicates the persistent store could not serve the
// request. Wraps ErrStoreUnavailable for errors.Is classification.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError for the failed
// store operation with its underlying cause.
func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, sanitize(e.Op), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, sanitize(e.Op))
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

// ConflictingUpdateError indicates a lost update was detected on a guarded
// write. Wraps ErrConflictingUpdate for errors.Is classification.
type ConflictingUpdateError struct {
	ParamName string
	ID        any
}

// NewConflictingUpdateError creates a ConflictingUpdateError for the aggregate
// whose guarded write was rejected.
func NewConflictingUpdateError(paramName string, id any) *ConflictingUpdateError {
	return &ConflictingUpdateError{ParamName: paramName, ID: id}
}

func (e *ConflictingUpdateError) Error() string {
	return fmt.Sprintf("%s: param is: %s, ID is: %s", ErrConflictingUpdate, sanitize(e.ParamName), e.ID)
}

func (e *ConflictingUpdateError) Unwrap() error {
	return ErrConflictingUpdate
}
