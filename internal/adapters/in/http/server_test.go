package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	httpadapter "sharebite/internal/adapters/in/http"
	"sharebite/internal/core/application/usecases/commands"
	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/ngo"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/core/domain/services"
	"sharebite/internal/core/ports"
	"sharebite/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a version-guarded in-memory store backing the HTTP tests.
type memStore struct {
	mu    sync.Mutex
	posts map[string]*post.Post
	ngos  []*ngo.NGO
}

func newMemStore() *memStore {
	return &memStore{posts: make(map[string]*post.Post)}
}

func (s *memStore) clone(p *post.Post, version int64) *post.Post {
	restored, err := post.RestorePost(
		p.ID(), p.Title(), p.Caption(), p.ImageURL(), p.Location(), p.Author(), p.OwnerID(),
		p.State(), p.AssignedNgo(), p.AssignedDelivery(), p.CreatedAt(), p.UpdatedAt(), version)
	if err != nil {
		panic(err)
	}
	return restored
}

func (s *memStore) Add(_ context.Context, p *post.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID().String()] = s.clone(p, p.Version())
	return nil
}

func (s *memStore) Update(_ context.Context, p *post.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.posts[p.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("postId", p.ID())
	}
	if stored.Version() != p.Version() {
		return errs.NewConflictingUpdateError("postId", p.ID())
	}
	s.posts[p.ID().String()] = s.clone(p, p.Version()+1)
	return nil
}

func (s *memStore) Get(_ context.Context, id kernel.UUID) (*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.posts[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("postId", id)
	}
	return s.clone(stored, stored.Version()), nil
}

func (s *memStore) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id.String()]; !ok {
		return errs.NewObjectNotFoundError("postId", id)
	}
	delete(s.posts, id.String())
	return nil
}

func (s *memStore) GetAllUnassigned(_ context.Context) ([]*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []*post.Post
	for _, stored := range s.posts {
		if stored.State() == post.Created {
			pending = append(pending, s.clone(stored, stored.Version()))
		}
	}
	return pending, nil
}

func (s *memStore) AddNgo(_ context.Context, n *ngo.NGO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ngos = append(s.ngos, n)
	return nil
}

func (s *memStore) GetNgo(_ context.Context, id kernel.UUID) (*ngo.NGO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.ngos {
		if n.ID().IsEqual(id) {
			return n, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("ngoId", id)
}

func (s *memStore) GetAllNgos(_ context.Context) ([]*ngo.NGO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ngo.NGO(nil), s.ngos...), nil
}

type memPostRepo struct{ store *memStore }

func (r memPostRepo) Add(ctx context.Context, p *post.Post) error    { return r.store.Add(ctx, p) }
func (r memPostRepo) Update(ctx context.Context, p *post.Post) error { return r.store.Update(ctx, p) }
func (r memPostRepo) Get(ctx context.Context, id kernel.UUID) (*post.Post, error) {
	return r.store.Get(ctx, id)
}
func (r memPostRepo) Delete(ctx context.Context, id kernel.UUID) error {
	return r.store.Delete(ctx, id)
}
func (r memPostRepo) GetAllUnassigned(ctx context.Context) ([]*post.Post, error) {
	return r.store.GetAllUnassigned(ctx)
}

type memNgoRepo struct{ store *memStore }

func (r memNgoRepo) Add(ctx context.Context, n *ngo.NGO) error { return r.store.AddNgo(ctx, n) }
func (r memNgoRepo) Get(ctx context.Context, id kernel.UUID) (*ngo.NGO, error) {
	return r.store.GetNgo(ctx, id)
}
func (r memNgoRepo) GetAll(ctx context.Context) ([]*ngo.NGO, error) {
	return r.store.GetAllNgos(ctx)
}

type memUoW struct{ store *memStore }

func (u memUoW) Begin(context.Context) error          { return nil }
func (u memUoW) Commit(context.Context) error         { return nil }
func (u memUoW) Rollback(context.Context) error       { return nil }
func (u memUoW) PostRepository() ports.PostRepository { return memPostRepo{store: u.store} }
func (u memUoW) NgoRepository() ports.NgoRepository   { return memNgoRepo{store: u.store} }

type memUoWFactory struct{ store *memStore }

func (f memUoWFactory) Create() commands.UoW { return memUoW{store: f.store} }

type memPostUoWFactory struct{ store *memStore }

func (f memPostUoWFactory) Create() commands.PostUoW { return memUoW{store: f.store} }

type memNgoUoWFactory struct{ store *memStore }

func (f memNgoUoWFactory) Create() commands.NgoUoW { return memUoW{store: f.store} }

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, ports.LifecycleEvent) error { return nil }

type staticNgoList struct{}

func (staticNgoList) Handle(context.Context, queries.GetAllNgosQuery) ([]queries.NgoQueryResponse, error) {
	return []queries.NgoQueryResponse{}, nil
}

func newTestServer(store *memStore) *httpadapter.Server {
	resolver := services.NewNearestNgoResolver()
	return httpadapter.NewServer(
		commands.NewCreatePostCommandHandler(memUoWFactory{store}, resolver, noopNotifier{}),
		commands.NewAcceptPostCommandHandler(memPostUoWFactory{store}, noopNotifier{}),
		commands.NewRejectPostCommandHandler(memPostUoWFactory{store}, noopNotifier{}),
		commands.NewAssignDeliveryCommandHandler(memPostUoWFactory{store}, noopNotifier{}),
		commands.NewUpdateDeliveryStatusCommandHandler(memPostUoWFactory{store}, noopNotifier{}),
		commands.NewDeletePostCommandHandler(memPostUoWFactory{store}),
		commands.NewRegisterNgoCommandHandler(memNgoUoWFactory{store}),
		queries.GetPostsAssignedToNgoQueryHandler{},
		queries.GetPostsAssignedToDeliveryQueryHandler{},
		staticNgoList{},
		nil,
		nil,
	)
}

func newTestEcho(store *memStore) *echo.Echo {
	e := echo.New()
	newTestServer(store).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createPostBody(userID string) string {
	return fmt.Sprintf(`{
		"title": "Wedding leftovers",
		"caption": "40 meal boxes",
		"location": {"latitude": 12.97, "longitude": 77.59, "address": "Church Street"},
		"author": "Asha",
		"userId": %q
	}`, userID)
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreatePost_AssignsRegisteredNgo(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)

	loc, err := kernel.NewGeoPoint(12.96, 77.58, "shelter")
	require.NoError(t, err)
	candidate, err := ngo.NewNGO(kernel.NewUUID(), "Hope", "hope@shelter.org", "secret", loc)
	require.NoError(t, err)
	require.NoError(t, store.AddNgo(t.Context(), candidate))

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "NgoAssigned", created.State)
	assert.Equal(t, candidate.ID().String(), created.AssignedNgoID)
	assert.False(t, created.IsAcceptedByNgo)
}

func TestServer_CreatePost_EmptyDirectoryStaysUnassigned(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Created", created.State)
	assert.Empty(t, created.AssignedNgoID)
}

func TestServer_CreatePost_MissingTitle(t *testing.T) {
	e := newTestEcho(newMemStore())
	body := fmt.Sprintf(`{"location": {"address": "x"}, "author": "Asha", "userId": %q}`,
		kernel.NewUUID().String())
	rec := doJSON(e, http.MethodPost, "/api/v1/posts", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreatePost_InvalidUserID(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody("not-a-uuid"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AcceptPost_FullLifecycle(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)
	ctx := t.Context()

	loc, err := kernel.NewGeoPoint(12.96, 77.58, "shelter")
	require.NoError(t, err)
	candidate, err := ngo.NewNGO(kernel.NewUUID(), "Hope", "hope@shelter.org", "secret", loc)
	require.NoError(t, err)
	require.NoError(t, store.AddNgo(ctx, candidate))

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Accept, assign a delivery partner, then walk the delivery leg.
	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/accept", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	deliveryID := kernel.NewUUID().String()
	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/assign-delivery",
		fmt.Sprintf(`{"deliveryId": %q}`, deliveryID))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/status",
		`{"status": "in_transit"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/status",
		`{"status": "delivered"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	id, err := kernel.UUIDFromString(created.ID)
	require.NoError(t, err)
	final, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, post.Delivered, final.State())
}

func TestServer_AcceptPost_SecondAcceptConflicts(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)

	loc, err := kernel.NewGeoPoint(12.96, 77.58, "shelter")
	require.NoError(t, err)
	candidate, err := ngo.NewNGO(kernel.NewUUID(), "Hope", "hope@shelter.org", "secret", loc)
	require.NoError(t, err)
	require.NoError(t, store.AddNgo(t.Context(), candidate))

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/accept", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/accept", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_AcceptPost_UnknownPost(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodPatch, "/api/v1/posts/"+kernel.NewUUID().String()+"/accept", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AcceptPost_InvalidID(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodPatch, "/api/v1/posts/garbage/accept", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateStatus_SkippedStageConflicts(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)

	loc, err := kernel.NewGeoPoint(12.96, 77.58, "shelter")
	require.NoError(t, err)
	candidate, err := ngo.NewNGO(kernel.NewUUID(), "Hope", "hope@shelter.org", "secret", loc)
	require.NoError(t, err)
	require.NoError(t, store.AddNgo(t.Context(), candidate))

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/accept", "")
	doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/assign-delivery",
		fmt.Sprintf(`{"deliveryId": %q}`, kernel.NewUUID().String()))

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/status",
		`{"status": "delivered"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_UpdateStatus_StatusFieldAdvancesLeg(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)
	ctx := t.Context()

	loc, err := kernel.NewGeoPoint(12.96, 77.58, "shelter")
	require.NoError(t, err)
	candidate, err := ngo.NewNGO(kernel.NewUUID(), "Hope", "hope@shelter.org", "secret", loc)
	require.NoError(t, err)
	require.NoError(t, store.AddNgo(ctx, candidate))

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/accept", "")
	doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/assign-delivery",
		fmt.Sprintf(`{"deliveryId": %q}`, kernel.NewUUID().String()))

	rec = doJSON(e, http.MethodPatch, "/api/v1/posts/"+created.ID+"/status",
		`{"status": "in_transit"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	id, err := kernel.UUIDFromString(created.ID)
	require.NoError(t, err)
	updated, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, post.InTransit, updated.State())
}

func TestServer_UpdateStatus_UnknownValue(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodPatch, "/api/v1/posts/"+kernel.NewUUID().String()+"/status",
		`{"status": "teleported"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_DeletePost_TwiceReturnsNotFound(t *testing.T) {
	store := newMemStore()
	e := newTestEcho(store)

	rec := doJSON(e, http.MethodPost, "/api/v1/posts", createPostBody(kernel.NewUUID().String()))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodDelete, "/api/v1/posts/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/v1/posts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RegisterNgo(t *testing.T) {
	e := newTestEcho(newMemStore())

	rec := doJSON(e, http.MethodPost, "/api/v1/ngos/create", `{
		"name": "Hope Shelter",
		"email": "hope@shelter.org",
		"password": "secret",
		"location": {"latitude": 12.96, "longitude": 77.58, "address": "shelter"}
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered httpadapter.Ngo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.Equal(t, "Hope Shelter", registered.Name)
	assert.False(t, registered.Verified)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestServer_RegisterNgo_MissingName(t *testing.T) {
	e := newTestEcho(newMemStore())
	rec := doJSON(e, http.MethodPost, "/api/v1/ngos/create", `{
		"email": "hope@shelter.org",
		"password": "secret",
		"location": {"address": "shelter"}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
