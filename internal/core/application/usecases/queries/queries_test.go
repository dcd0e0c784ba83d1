package queries_test

import (
	"testing"

	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPostsAssignedToNgoQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetPostsAssignedToNgoQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.NgoID())
}

func TestNewGetPostsAssignedToNgoQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetPostsAssignedToNgoQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetPostsAssignedToNgoQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPostsAssignedToNgoQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPostsAssignedToNgoQueryIsNotConstructed)
}

func TestNewGetPostsAssignedToDeliveryQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetPostsAssignedToDeliveryQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.DeliveryID())
}

func TestNewGetPostsAssignedToDeliveryQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetPostsAssignedToDeliveryQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetAllNgosQuery_Valid(t *testing.T) {
	query := queries.NewGetAllNgosQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllNgosQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllNgosQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllNgosQueryIsNotConstructed)
}
