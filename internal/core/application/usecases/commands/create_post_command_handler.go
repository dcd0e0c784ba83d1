package commands

import (
	"context"
	"time"

	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/core/domain/services"
	"sharebite/internal/core/ports"
)

// CreatePostCommandHandler handles the business logic for post creation.
// Persists the new post in Created state, consults the assignment resolver
// over the current NGO directory snapshot, and applies the assign-ngo
// transition when a candidate exists. An empty directory is not an error:
// the post stays unassigned and the sweep retries later.
type CreatePostCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.AssignmentResolver
	notifier   ports.Notifier
}

// NewCreatePostCommandHandler creates a handler for post creation.
// Requires a cross-aggregate UoWFactory (the directory is read while the post
// is written), a resolver strategy, and a notification sink.
func NewCreatePostCommandHandler(
	uowFactory UoWFactory,
	resolver services.AssignmentResolver,
	notifier ports.Notifier,
) CreatePostCommandHandler {
	return CreatePostCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		notifier:   notifier,
	}
}

// Handle processes the post creation command and returns the persisted post,
// with or without an NGO assignment.
func (h CreatePostCommandHandler) Handle(ctx context.Context, cmd CreatePostCommand) (*post.Post, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newPost, err := post.NewPost(
		cmd.PostID(),
		cmd.Title(),
		cmd.Caption(),
		cmd.ImageURL(),
		cmd.Location(),
		cmd.Author(),
		cmd.OwnerID(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	postRepo := uow.PostRepository()
	if err = postRepo.Add(ctx, newPost); err != nil {
		return nil, err
	}

	ngos, err := uow.NgoRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ngoID, err := h.resolver.ResolveNgoForPost(newPost, ngos)
	if err != nil {
		return nil, err
	}

	if ngoID != nil {
		if err = newPost.AssignNgo(*ngoID); err != nil {
			return nil, err
		}
		if err = postRepo.Update(ctx, newPost); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Notification failures never undo a committed transition.
	_ = h.notifier.Notify(ctx, lifecycleEvent(newPost, "create"))

	return newPost, nil
}

// lifecycleEvent builds the notification payload for a committed transition.
func lifecycleEvent(p *post.Post, transition string) ports.LifecycleEvent {
	event := ports.LifecycleEvent{
		PostID:     p.ID().String(),
		Transition: transition,
		State:      p.State().String(),
		OccurredAt: time.Now().UTC(),
	}
	if id := p.AssignedNgo(); id != nil {
		event.NgoID = id.String()
	}
	if id := p.AssignedDelivery(); id != nil {
		event.DeliveryID = id.String()
	}
	return event
}
