package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
)

// UpdateDeliveryStatusCommand advances a post's delivery leg to the given
// status. The raw status string is parsed at construction time, so a handler
// never sees an unknown status.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID
	status post.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to move the post's
// delivery leg to rawStatus.
func NewUpdateDeliveryStatusCommand(postID kernel.UUID, rawStatus string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setStatus(rawStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// PostID returns the post whose delivery leg is advancing.
func (c UpdateDeliveryStatusCommand) PostID() kernel.UUID {
	return c.postID
}

// Status returns the target delivery status.
func (c UpdateDeliveryStatusCommand) Status() post.DeliveryStatus {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(rawStatus string) error {
	status, err := post.ParseDeliveryStatus(rawStatus)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
