package commands

import (
	"context"
	"errors"

	"sharebite/internal/core/domain/services"
	"sharebite/internal/core/ports"
	"sharebite/internal/pkg/errs"
)

var (
	// ErrNoPendingPosts signals that the sweep found nothing to route.
	ErrNoPendingPosts = errors.New("no pending posts")

	// ErrNoNgosRegistered signals that the directory is empty, so nothing
	// can be routed this round.
	ErrNoNgosRegistered = errors.New("no NGOs registered")
)

// AssignPendingPostsCommandHandler routes posts that are still in Created
// state to an NGO. Posts left behind by an empty directory at creation time,
// or returned to the pool by a reject, are picked up here.
//
// A post that loses its version race mid-sweep is skipped rather than
// failing the whole round: the next sweep sees its final state.
type AssignPendingPostsCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.AssignmentResolver
	notifier   ports.Notifier
}

// NewAssignPendingPostsCommandHandler creates a handler for the
// re-assignment sweep.
func NewAssignPendingPostsCommandHandler(
	uowFactory UoWFactory,
	resolver services.AssignmentResolver,
	notifier ports.Notifier,
) AssignPendingPostsCommandHandler {
	return AssignPendingPostsCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		notifier:   notifier,
	}
}

// Handle processes one sweep round. Returns ErrNoPendingPosts or
// ErrNoNgosRegistered when there is nothing to do.
func (h AssignPendingPostsCommandHandler) Handle(ctx context.Context, cmd AssignPendingPostsCommand) error {
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
	pending, err := postRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingPosts
	}

	ngos, err := uow.NgoRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(ngos) == 0 {
		return ErrNoNgosRegistered
	}

	assigned := make([]ports.LifecycleEvent, 0, len(pending))
	for _, aggregate := range pending {
		ngoID, resolveErr := h.resolver.ResolveNgoForPost(aggregate, ngos)
		if resolveErr != nil {
			return resolveErr
		}
		if ngoID == nil {
			continue
		}

		if err = aggregate.AssignNgo(*ngoID); err != nil {
			return err
		}

		if err = postRepo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConflictingUpdate) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		assigned = append(assigned, lifecycleEvent(aggregate, "assign-ngo"))
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range assigned {
		_ = h.notifier.Notify(ctx, event)
	}

	return nil
}
