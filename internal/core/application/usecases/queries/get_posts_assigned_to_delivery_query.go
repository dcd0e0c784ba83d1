package queries

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrGetPostsAssignedToDeliveryQueryIsNotConstructed = errors.New(
		"GetPostsAssignedToDeliveryQuery must be created via NewGetPostsAssignedToDeliveryQuery constructor",
	)
)

// GetPostsAssignedToDeliveryQuery retrieves the posts handed to a delivery
// partner, delivered ones included, so the partner sees the full run sheet.
type GetPostsAssignedToDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPostsAssignedToDeliveryQuery creates a query for the delivery
// partner's run sheet.
func NewGetPostsAssignedToDeliveryQuery(deliveryID kernel.UUID) (GetPostsAssignedToDeliveryQuery, error) {
	q := GetPostsAssignedToDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDeliveryID(deliveryID); err != nil {
		return GetPostsAssignedToDeliveryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPostsAssignedToDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetPostsAssignedToDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the delivery partner whose run sheet is being read.
func (q GetPostsAssignedToDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetPostsAssignedToDeliveryQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	q.deliveryID = deliveryID
	return nil
}
