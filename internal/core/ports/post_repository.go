// Package ports defines the contracts between the lifecycle engine and
// infrastructure: repositories, the unit of work, and the external
// collaborators (blob store, identity, notifications). These interfaces
// enable dependency inversion and testability.
package ports

import (
	"context"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"
)

// PostRepository defines the persistence contract for post aggregates.
// The post store is the single source of truth for a post's lifecycle fields;
// one writer per id, guarded writes only.
type PostRepository interface {
	// Add persists a new post aggregate. The post must be valid and must not
	// already exist.
	Add(ctx context.Context, aggregate *post.Post) error

	// Update persists changes to an existing post using a compare-and-set on
	// the aggregate's version. Returns errs.ErrConflictingUpdate when another
	// writer got there first, errs.ErrObjectNotFound when the row is gone.
	// On success the stored version is bumped.
	Update(ctx context.Context, aggregate *post.Post) error

	// Get retrieves a post aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*post.Post, error)

	// Delete removes a post unconditionally. Returns errs.ErrObjectNotFound
	// when the post does not exist, so a second delete fails cleanly.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllUnassigned retrieves every post still in Created state, oldest
	// first. Used by the re-assignment sweep.
	GetAllUnassigned(ctx context.Context) ([]*post.Post, error)
}
