package blob_test

import (
	"testing"

	"sharebite/internal/adapters/out/blob"
	"sharebite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsStore_PutAndGet(t *testing.T) {
	ctx := t.Context()
	store, err := blob.NewFsStore(t.TempDir(), "http://localhost:8080/images/")
	require.NoError(t, err)

	url, err := store.Put(ctx, "meal.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/meal.jpg", url)

	data, err := store.Get(ctx, "meal.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestFsStore_GetMissing(t *testing.T) {
	ctx := t.Context()
	store, err := blob.NewFsStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	_, err = store.Get(ctx, "missing.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestFsStore_RejectsPathTraversal(t *testing.T) {
	ctx := t.Context()
	store, err := blob.NewFsStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	_, err = store.Put(ctx, "../evil.jpg", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
