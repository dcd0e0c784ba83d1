package ngorepo

import (
	"context"
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/ngo"
	"sharebite/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNgoRepository implements NgoRepository using GORM.
type GormNgoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNgoRepository creates a new GORM NGO repository.
func NewGormNgoRepository(db *gorm.DB, tracker aggregateTracker) *GormNgoRepository {
	return &GormNgoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered NGO to the database.
func (r *GormNgoRepository) Add(ctx context.Context, aggregate *ngo.NGO) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add ngo", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an NGO by ID.
func (r *GormNgoRepository) Get(ctx context.Context, id kernel.UUID) (*ngo.NGO, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NgoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ngoId", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get ngo", err)
	}

	return toDomain(dto)
}

// GetAll retrieves the full directory in stable ID order, so the assignment
// resolver's tie-breaking stays deterministic across calls.
func (r *GormNgoRepository) GetAll(ctx context.Context) ([]*ngo.NGO, error) {
	var dtos []NgoDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("list ngos", err)
	}

	ngos := make([]*ngo.NGO, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ngos = append(ngos, n)
	}

	return ngos, nil
}
