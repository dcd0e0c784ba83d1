package ports

import (
	"context"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/ngo"
)

// NgoRepository defines the persistence contract for the NGO directory.
// The directory owns NGO records; the engine registers and reads them but
// never deletes them.
type NgoRepository interface {
	// Add persists a newly registered NGO.
	Add(ctx context.Context, aggregate *ngo.NGO) error

	// Get retrieves an NGO by its unique identifier. Used by the lifecycle
	// service to check that a routed NGO actually exists before writing the
	// reference.
	Get(ctx context.Context, id kernel.UUID) (*ngo.NGO, error)

	// GetAll retrieves the full directory snapshot for the assignment
	// resolver, in stable lowest-id order.
	GetAll(ctx context.Context) ([]*ngo.NGO, error)
}
