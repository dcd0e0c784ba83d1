package postrepo_test

import (
	"context"
	"testing"
	"time"

	"sharebite/internal/adapters/out/postgres/postrepo"
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PostRepositoryIntegrationTestSuite provides integration tests for
// PostRepository using PostgreSQL containers.
type PostRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *postrepo.GormPostRepository
	tracker    *MockAggregateTracker
}

func (suite *PostRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&postrepo.PostDTO{}))
}

func (suite *PostRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE posts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = postrepo.NewGormPostRepository(suite.db, suite.tracker)
}

func (suite *PostRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PostRepositoryIntegrationTestSuite) newPost() *post.Post {
	location, err := kernel.NewGeoPoint(12.9716, 77.5946, "Church Street, Bangalore")
	suite.Require().NoError(err)

	p, err := post.NewPost(
		kernel.NewUUID(),
		"Wedding leftovers",
		"40 meal boxes",
		"https://img.example/1.jpg",
		location,
		"Asha",
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *PostRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newPost()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), loaded.ID())
	suite.Equal(aggregate.Title(), loaded.Title())
	suite.Equal(aggregate.Caption(), loaded.Caption())
	suite.Equal(aggregate.Author(), loaded.Author())
	suite.Equal(aggregate.OwnerID(), loaded.OwnerID())
	suite.Equal(post.Created, loaded.State())
	suite.Nil(loaded.AssignedNgo())
	suite.True(aggregate.Location().IsEqual(loaded.Location()))
	suite.Equal(aggregate.Version(), loaded.Version())
}

func (suite *PostRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndBumpsVersion() {
	ctx := context.Background()
	aggregate := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	ngoID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AssignNgo(ngoID))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(post.NgoAssigned, loaded.State())
	suite.Require().NotNil(loaded.AssignedNgo())
	suite.Equal(ngoID, *loaded.AssignedNgo())
	suite.Equal(aggregate.Version()+1, loaded.Version())
}

func (suite *PostRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	aggregate := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two readers load the same row.
	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignNgo(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer still holds the old version and must lose.
	suite.Require().NoError(second.AssignNgo(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflictingUpdate)

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(*first.AssignedNgo(), *loaded.AssignedNgo())
}

func (suite *PostRepositoryIntegrationTestSuite) TestUpdate_MissingRowReportsNotFound() {
	ctx := context.Background()
	aggregate := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	suite.Require().NoError(aggregate.AssignNgo(kernel.NewUUID()))
	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostRepositoryIntegrationTestSuite) TestUpdate_ClearsReferenceOnReject() {
	ctx := context.Background()
	aggregate := suite.newPost()
	suite.Require().NoError(aggregate.AssignNgo(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Reject())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(post.Created, reloaded.State())
	suite.Nil(reloaded.AssignedNgo())
}

func (suite *PostRepositoryIntegrationTestSuite) TestDelete_SecondDeleteFails() {
	ctx := context.Background()
	aggregate := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	err := suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostRepositoryIntegrationTestSuite) TestGetAllUnassigned_OldestFirst() {
	ctx := context.Background()

	first := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	time.Sleep(5 * time.Millisecond)

	assigned := suite.newPost()
	suite.Require().NoError(assigned.AssignNgo(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	time.Sleep(5 * time.Millisecond)

	second := suite.newPost()
	suite.Require().NoError(suite.repository.Add(ctx, second))

	pending, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(first.ID(), pending[0].ID())
	suite.Equal(second.ID(), pending[1].ID())
}

func TestPostRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PostRepositoryIntegrationTestSuite))
}
