package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPostsAssignedToDeliveryQueryHandler reads the delivery partner's run
// sheet straight from the database.
type GetPostsAssignedToDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetPostsAssignedToDeliveryQueryHandler creates a handler for run sheet
// queries. Requires a GORM database connection for query execution.
func NewGetPostsAssignedToDeliveryQueryHandler(db *gorm.DB) GetPostsAssignedToDeliveryQueryHandler {
	return GetPostsAssignedToDeliveryQueryHandler{db: db}
}

// Handle executes the query. Returns every post assigned to the delivery
// partner regardless of delivery status, oldest first with ID as the
// tiebreaker.
func (h GetPostsAssignedToDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetPostsAssignedToDeliveryQuery,
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
		WHERE assigned_delivery_id = ?
		ORDER BY created_at, id
	`, query.DeliveryID().Bytes()).Rows()
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
