package commands

import (
	"context"

	"sharebite/internal/core/ports"
)

// RejectPostCommandHandler applies the reject transition: the routing is
// cleared and the post returns to Created, where the assignment sweep may
// route it again (possibly to the same NGO if it is still the best
// candidate).
type RejectPostCommandHandler struct {
	uowFactory PostUoWFactory
	notifier   ports.Notifier
}

// NewRejectPostCommandHandler creates a handler for NGO rejection.
func NewRejectPostCommandHandler(uowFactory PostUoWFactory, notifier ports.Notifier) RejectPostCommandHandler {
	return RejectPostCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reject command.
func (h RejectPostCommandHandler) Handle(ctx context.Context, cmd RejectPostCommand) error {
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

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = postRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, lifecycleEvent(aggregate, "reject"))

	return nil
}
