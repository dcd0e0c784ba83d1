package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrRejectPostCommandIsNotConstructed = errors.New(
		"RejectPostCommand must be created via NewRejectPostCommand constructor",
	)
)

// RejectPostCommand represents an NGO declining a routed post, releasing it
// back to the unassigned pool.
type RejectPostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectPostCommand creates a command to reject the identified post.
func NewRejectPostCommand(postID kernel.UUID) (RejectPostCommand, error) {
	if err := postID.Validate(); err != nil {
		return RejectPostCommand{}, err
	}

	return RejectPostCommand{
		postID: postID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPostCommand) Validate() error {
	return c.guard.Validate(ErrRejectPostCommandIsNotConstructed)
}

// PostID returns the post being rejected.
func (c RejectPostCommand) PostID() kernel.UUID {
	return c.postID
}
