package queries

import (
	"errors"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/pkg/guard"
)

var (
	ErrGetAllNgosQueryIsNotConstructed = errors.New(
		"GetAllNgosQuery must be created via NewGetAllNgosQuery constructor",
	)
)

// GetAllNgosQuery retrieves the full NGO directory. Parameterless.
type GetAllNgosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllNgosQuery creates a query to list the NGO directory.
func NewGetAllNgosQuery() GetAllNgosQuery {
	return GetAllNgosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllNgosQuery) Validate() error {
	return q.guard.Validate(ErrGetAllNgosQueryIsNotConstructed)
}

// NgoQueryResponse is the directory read model. Credentials never leave the
// store through this query.
type NgoQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Email    string
	Location kernel.GeoPoint
	Verified bool
}
