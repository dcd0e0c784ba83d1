// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the domain model and read the store directly, returning
// flat read models shaped for the transport layer.
package queries

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrGetPostsAssignedToNgoQueryIsNotConstructed = errors.New(
		"GetPostsAssignedToNgoQuery must be created via NewGetPostsAssignedToNgoQuery constructor",
	)
)

// GetPostsAssignedToNgoQuery retrieves the posts routed to an NGO that are
// still awaiting its decision. Accepted posts leave this work queue.
//
// Example:
//
//	query, err := NewGetPostsAssignedToNgoQuery(ngoID)
//	if err != nil {
//	    return err
//	}
//
//	posts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get assigned posts: %w", err)
//	}
//
//	fmt.Printf("%d posts awaiting acceptance\n", len(posts))
type GetPostsAssignedToNgoQuery struct { //nolint:recvcheck //using for validation
	ngoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPostsAssignedToNgoQuery creates a query for the NGO's pending work
// queue.
func NewGetPostsAssignedToNgoQuery(ngoID kernel.UUID) (GetPostsAssignedToNgoQuery, error) {
	q := GetPostsAssignedToNgoQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setNgoID(ngoID); err != nil {
		return GetPostsAssignedToNgoQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPostsAssignedToNgoQuery) Validate() error {
	return q.guard.Validate(ErrGetPostsAssignedToNgoQueryIsNotConstructed)
}

// NgoID returns the NGO whose queue is being read.
func (q GetPostsAssignedToNgoQuery) NgoID() kernel.UUID {
	return q.ngoID
}

func (q *GetPostsAssignedToNgoQuery) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}
	q.ngoID = ngoID
	return nil
}

// PostQueryResponse is the flat post read model returned by post queries.
type PostQueryResponse struct {
	ID             kernel.UUID
	Title          string
	Caption        string
	ImageURL       string
	Location       kernel.GeoPoint
	Author         string
	State          string
	DeliveryStatus string
}
