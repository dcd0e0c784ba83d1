// Package errs provides standardized error types for the donation platform.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure kind in the engine's taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced post or NGO does not exist
//   - InvalidTransitionError: a lifecycle transition guard failed
//   - StoreUnavailableError: transient infrastructure failure, retryable
//   - ConflictingUpdateError: a guarded write lost a concurrent race, retryable
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels; only
// ErrStoreUnavailable and ErrConflictingUpdate are safe to retry
// automatically.
package errs
