package commands

import (
	"context"

	"sharebite/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler advances the delivery leg of a post.
// Only forward moves are allowed: pending, in_transit, delivered.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory PostUoWFactory
	notifier   ports.Notifier
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status updates.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory PostUoWFactory,
	notifier ports.Notifier,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update. Skipped stages and regressions surface
// an invalid-transition error.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if err = aggregate.AdvanceDeliveryStatus(cmd.Status()); err != nil {
		return err
	}

	if err = postRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, lifecycleEvent(aggregate, "delivery-status"))

	return nil
}
