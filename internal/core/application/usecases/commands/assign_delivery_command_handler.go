package commands

import (
	"context"

	"sharebite/internal/core/ports"
)

// AssignDeliveryCommandHandler hands an accepted post to a delivery partner,
// moving it to DeliveryAssigned with delivery status pending.
type AssignDeliveryCommandHandler struct {
	uowFactory PostUoWFactory
	notifier   ports.Notifier
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory PostUoWFactory, notifier ports.Notifier) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command. Fails with an invalid-transition
// error when the post has not been accepted by its NGO yet.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	postRepo := uow.PostRepository()
	aggregate, err := postRepo.Get(ctx, cmd.PostID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDelivery(cmd.DeliveryID()); err != nil {
		return err
	}

	if err = postRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, lifecycleEvent(aggregate, "assign-delivery"))

	return nil
}
