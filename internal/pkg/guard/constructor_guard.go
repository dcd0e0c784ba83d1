// Package guard provides a small defensive-programming helper that ensures
// value objects, entities, commands and queries are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error, so validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embed it in a domain object and set
// it with NewConstructorGuard inside the constructor; a zero-value instance
// will then fail Validate.
//
// Example:
//
//	type AcceptPostCommand struct {
//	    postID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewAcceptPostCommand(postID kernel.UUID) (AcceptPostCommand, error) {
//	    ...
//	    return AcceptPostCommand{postID: postID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AcceptPostCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptPostCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
