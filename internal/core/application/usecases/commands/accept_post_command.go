package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrAcceptPostCommandIsNotConstructed = errors.New(
		"AcceptPostCommand must be created via NewAcceptPostCommand constructor",
	)
)

// AcceptPostCommand represents an NGO's decision to take a routed post.
type AcceptPostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptPostCommand creates a command to accept the identified post.
func NewAcceptPostCommand(postID kernel.UUID) (AcceptPostCommand, error) {
	if err := postID.Validate(); err != nil {
		return AcceptPostCommand{}, err
	}

	return AcceptPostCommand{
		postID: postID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPostCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPostCommandIsNotConstructed)
}

// PostID returns the post being accepted.
func (c AcceptPostCommand) PostID() kernel.UUID {
	return c.postID
}
