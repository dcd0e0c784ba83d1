package commands

import (
	"context"
)

// DeletePostCommandHandler removes a post. Deleting an absent post fails
// with an object-not-found error, so a second delete of the same ID is
// reported to the caller rather than silently succeeding.
type DeletePostCommandHandler struct {
	uowFactory PostUoWFactory
}

// NewDeletePostCommandHandler creates a handler for post deletion.
func NewDeletePostCommandHandler(uowFactory PostUoWFactory) DeletePostCommandHandler {
	return DeletePostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h DeletePostCommandHandler) Handle(ctx context.Context, cmd DeletePostCommand) error {
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

	if err := uow.PostRepository().Delete(ctx, cmd.PostID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
