package commands_test

import (
	"testing"

	"sharebite/internal/core/application/usecases/commands"
	"sharebite/internal/core/domain/model/ngo"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/core/domain/services"
	"sharebite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPendingPostsCommandHandler_Handle_NoPendingPosts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPendingPostsCommand()
	require.NoError(t, err)

	postRepo := new(MockPostRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PostRepository").Return(postRepo).Once(),
		postRepo.On("GetAllUnassigned", mock.Anything).Return([]*post.Post{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingPostsCommandHandler(factory, services.NewNearestNgoResolver(), &recordingNotifier{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoPendingPosts)
}

func TestAssignPendingPostsCommandHandler_Handle_NoNgosRegistered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPendingPostsCommand()
	require.NoError(t, err)

	pending := newCreatedPost(t)
	postRepo := new(MockPostRepository)
	ngoRepo := new(MockNgoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PostRepository").Return(postRepo).Once(),
		postRepo.On("GetAllUnassigned", mock.Anything).Return([]*post.Post{pending}, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("GetAll", mock.Anything).Return([]*ngo.NGO{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingPostsCommandHandler(factory, services.NewNearestNgoResolver(), &recordingNotifier{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoNgosRegistered)
}

func TestAssignPendingPostsCommandHandler_Handle_RoutesAllPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPendingPostsCommand()
	require.NoError(t, err)

	first := newCreatedPost(t)
	second := newCreatedPost(t)
	candidate := testNgo(t, 12.97, 77.59)

	postRepo := new(MockPostRepository)
	ngoRepo := new(MockNgoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PostRepository").Return(postRepo).Once(),
		postRepo.On("GetAllUnassigned", mock.Anything).Return([]*post.Post{first, second}, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("GetAll", mock.Anything).Return([]*ngo.NGO{candidate}, nil).Once(),
		postRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		postRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &recordingNotifier{}

	h := commands.NewAssignPendingPostsCommandHandler(factory, services.NewNearestNgoResolver(), notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, post.NgoAssigned, first.State())
	assert.Equal(t, post.NgoAssigned, second.State())
	require.Len(t, notifier.events, 2)
	assert.Equal(t, "assign-ngo", notifier.events[0].Transition)
	postRepo.AssertExpectations(t)
}

func TestAssignPendingPostsCommandHandler_Handle_SkipsLostRace(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignPendingPostsCommand()
	require.NoError(t, err)

	contested := newCreatedPost(t)
	clean := newCreatedPost(t)
	candidate := testNgo(t, 12.97, 77.59)

	postRepo := new(MockPostRepository)
	ngoRepo := new(MockNgoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PostRepository").Return(postRepo).Once(),
		postRepo.On("GetAllUnassigned", mock.Anything).Return([]*post.Post{contested, clean}, nil).Once(),
		uow.On("NgoRepository").Return(ngoRepo).Once(),
		ngoRepo.On("GetAll", mock.Anything).Return([]*ngo.NGO{candidate}, nil).Once(),
		postRepo.On("Update", mock.Anything, contested).
			Return(errs.NewConflictingUpdateError("postId", contested.ID())).Once(),
		postRepo.On("Update", mock.Anything, clean).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := &recordingNotifier{}

	h := commands.NewAssignPendingPostsCommandHandler(factory, services.NewNearestNgoResolver(), notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, clean.ID().String(), notifier.events[0].PostID)
}
