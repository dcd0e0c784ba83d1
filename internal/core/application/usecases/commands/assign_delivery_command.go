package commands

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
)

// AssignDeliveryCommand hands an accepted post to a delivery partner.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	postID     kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign the identified
// delivery partner to the post.
func NewAssignDeliveryCommand(postID, deliveryID kernel.UUID) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// PostID returns the post receiving a delivery partner.
func (c AssignDeliveryCommand) PostID() kernel.UUID {
	return c.postID
}

// DeliveryID returns the delivery partner's user ID.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AssignDeliveryCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *AssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}
