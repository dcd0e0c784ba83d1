package postrepo

import (
	"context"
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPostRepository implements PostRepository using GORM.
type GormPostRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPostRepository creates a new GORM post repository.
func NewGormPostRepository(db *gorm.DB, tracker aggregateTracker) *GormPostRepository {
	return &GormPostRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new post to the database.
func (r *GormPostRepository) Add(ctx context.Context, aggregate *post.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add post", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing post with a compare-and-set on its version.
// When the guarded write touches no row, the post either moved under us
// (conflicting update) or is gone (not found); a re-read tells them apart.
func (r *GormPostRepository) Update(ctx context.Context, aggregate *post.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&PostDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update post", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&PostDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return errs.NewStoreUnavailableError("update post", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("postId", aggregate.ID().String())
		}
		return errs.NewConflictingUpdateError("postId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a post by ID.
func (r *GormPostRepository) Get(ctx context.Context, id kernel.UUID) (*post.Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("postId", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get post", err)
	}

	return toDomain(dto)
}

// Delete removes a post by ID. Deleting an absent post reports not found.
func (r *GormPostRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PostDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreUnavailableError("delete post", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("postId", id.String())
	}

	return nil
}

// GetAllUnassigned retrieves all posts still in Created state, oldest first.
func (r *GormPostRepository) GetAllUnassigned(ctx context.Context) ([]*post.Post, error) {
	var dtos []PostDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "state = ?", post.Created).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("list unassigned posts", err)
	}

	posts := make([]*post.Post, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, nil
}
