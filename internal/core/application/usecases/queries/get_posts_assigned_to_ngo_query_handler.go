package queries

import (
	"context"
	"database/sql"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPostsAssignedToNgoQueryHandler reads the NGO's pending work queue
// straight from the database.
//
// Example:
//
//	handler := NewGetPostsAssignedToNgoQueryHandler(db)
//	query, _ := NewGetPostsAssignedToNgoQuery(ngoID)
//
//	posts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get assigned posts: %v", err)
//	    return err
//	}
type GetPostsAssignedToNgoQueryHandler struct {
	db *gorm.DB
}

// NewGetPostsAssignedToNgoQueryHandler creates a handler for NGO work queue
// queries. Requires a GORM database connection for query execution.
func NewGetPostsAssignedToNgoQueryHandler(db *gorm.DB) GetPostsAssignedToNgoQueryHandler {
	return GetPostsAssignedToNgoQueryHandler{db: db}
}

// Handle executes the query. Returns posts routed to the NGO and not yet
// accepted, oldest first with ID as the tiebreaker so pagination order is
// stable.
func (h GetPostsAssignedToNgoQueryHandler) Handle(
	ctx context.Context,
	query GetPostsAssignedToNgoQuery,
) ([]PostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			caption,
			image_url,
			latitude,
			longitude,
			has_coordinates,
			address,
			author,
			state
		FROM posts
		WHERE assigned_ngo_id = ? AND state = ?
		ORDER BY created_at, id
	`, query.NgoID().Bytes(), post.NgoAssigned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]PostQueryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanPostRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		posts = append(posts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// scanPostRow converts one raw post row into the flat read model. The column
// order must match the SELECT lists of the post query handlers.
func scanPostRow(rows *sql.Rows) (PostQueryResponse, error) {
	var resp PostQueryResponse
	var id uuid.UUID
	var latitude, longitude float64
	var hasCoordinates bool
	var address string
	var state int

	if err := rows.Scan(
		&id,
		&resp.Title,
		&resp.Caption,
		&resp.ImageURL,
		&latitude,
		&longitude,
		&hasCoordinates,
		&address,
		&resp.Author,
		&state,
	); err != nil {
		return PostQueryResponse{}, err
	}

	postID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PostQueryResponse{}, err
	}
	resp.ID = postID

	location, err := restoreGeoPoint(latitude, longitude, hasCoordinates, address)
	if err != nil {
		return PostQueryResponse{}, err
	}
	resp.Location = location

	postState := post.State(state)
	if err = postState.Validate(); err != nil {
		return PostQueryResponse{}, err
	}
	resp.State = postState.String()
	resp.DeliveryStatus = string(postState.DeliveryStatus())

	return resp, nil
}

func restoreGeoPoint(latitude, longitude float64, hasCoordinates bool, address string) (kernel.GeoPoint, error) {
	if hasCoordinates {
		return kernel.NewGeoPoint(latitude, longitude, address)
	}
	return kernel.NewAddressGeoPoint(address), nil
}
