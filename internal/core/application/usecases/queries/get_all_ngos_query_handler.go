package queries

import (
	"context"

	"sharebite/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllNgosQueryHandler retrieves the NGO directory from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllNgosQueryHandler(db)
//	ngos, err := handler.Handle(ctx, NewGetAllNgosQuery())
//	if err != nil {
//	    log.Printf("Failed to list NGOs: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d NGOs\n", len(ngos))
type GetAllNgosQueryHandler struct {
	db *gorm.DB
}

// NewGetAllNgosQueryHandler creates a handler for directory listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllNgosQueryHandler(db *gorm.DB) GetAllNgosQueryHandler {
	return GetAllNgosQueryHandler{db: db}
}

// Handle executes the query to retrieve all registered NGOs in stable ID
// order.
func (h GetAllNgosQueryHandler) Handle(
	ctx context.Context,
	query GetAllNgosQuery,
) ([]NgoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			latitude,
			longitude,
			has_coordinates,
			address,
			verified
		FROM ngos
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ngos := make([]NgoQueryResponse, 0)
	for rows.Next() {
		var resp NgoQueryResponse
		var id uuid.UUID
		var latitude, longitude float64
		var hasCoordinates bool
		var address string

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&latitude,
			&longitude,
			&hasCoordinates,
			&address,
			&resp.Verified,
		); err != nil {
			return nil, err
		}

		ngoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = ngoID

		location, locErr := restoreGeoPoint(latitude, longitude, hasCoordinates, address)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		ngos = append(ngos, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ngos, nil
}
