package commands

import (
	"context"

	"sharebite/internal/core/ports"
)

// AcceptPostCommandHandler applies the accept transition: the routed NGO
// takes the post, moving it to NgoAccepted.
//
// The read-guard-write sequence runs inside a transaction and the repository
// write is version-guarded, so two racing accepts cannot both win: one
// commits, the other surfaces a conflicting-update or, after re-reading, an
// invalid-transition error.
type AcceptPostCommandHandler struct {
	uowFactory PostUoWFactory
	notifier   ports.Notifier
}

// NewAcceptPostCommandHandler creates a handler for NGO acceptance.
func NewAcceptPostCommandHandler(uowFactory PostUoWFactory, notifier ports.Notifier) AcceptPostCommandHandler {
	return AcceptPostCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the accept command. Fails with an object-not-found error
// when the post does not exist and an invalid-transition error when the post
// has no routed NGO or is already accepted.
func (h AcceptPostCommandHandler) Handle(ctx context.Context, cmd AcceptPostCommand) error {
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

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = postRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, lifecycleEvent(aggregate, "accept"))

	return nil
}
