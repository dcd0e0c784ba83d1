package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrDeletePostCommandIsNotConstructed = errors.New(
		"DeletePostCommand must be created via NewDeletePostCommand constructor",
	)
)

// DeletePostCommand removes a post from the platform.
type DeletePostCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePostCommand creates a command to delete the identified post.
func NewDeletePostCommand(postID kernel.UUID) (DeletePostCommand, error) {
	cmd := DeletePostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPostID(postID); err != nil {
		return DeletePostCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePostCommand) Validate() error {
	return c.guard.Validate(ErrDeletePostCommandIsNotConstructed)
}

// PostID returns the post marked for deletion.
func (c DeletePostCommand) PostID() kernel.UUID {
	return c.postID
}

func (c *DeletePostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}
