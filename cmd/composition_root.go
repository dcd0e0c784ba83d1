package cmd

import (
	"log/slog"
	"time"

	httpadapter "sharebite/internal/adapters/in/http"
	"sharebite/internal/adapters/out/notifier"
	"sharebite/internal/adapters/out/postgres"
	redisadapter "sharebite/internal/adapters/out/redis"
	"sharebite/internal/core/application/usecases/commands"
	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/services"
	"sharebite/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Optional
// infrastructure (Kafka, Redis) is injected pre-built; when absent, the root
// falls back to log notifications and uncached reads.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   services.AssignmentResolver
	notifier   ports.Notifier
	logger     *slog.Logger

	ngoCache *redisadapter.CachedNgoListHandler
}

// NewCompositionRoot builds the wiring. lifecycleNotifier may be nil, in
// which case events go to the structured log.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	lifecycleNotifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	if lifecycleNotifier == nil {
		lifecycleNotifier = notifier.NewLogNotifier(logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   services.NewNearestNgoResolver(),
		notifier:   lifecycleNotifier,
		logger:     logger,
	}
}

// EnableNgoCache decorates the directory listing with a Redis cache.
func (c *CompositionRoot) EnableNgoCache(client *redis.Client, ttl time.Duration) {
	inner := queries.NewGetAllNgosQueryHandler(c.gormDB)
	c.ngoCache = redisadapter.NewCachedNgoListHandler(inner, client, ttl, c.logger)
}

func (c *CompositionRoot) CreateCreatePostCommandHandler() commands.CreatePostCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePostCommandHandler(f, c.resolver, c.notifier)
}

func (c *CompositionRoot) CreateAcceptPostCommandHandler() commands.AcceptPostCommandHandler {
	var f commands.PostUoWFactory = FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptPostCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRejectPostCommandHandler() commands.RejectPostCommandHandler {
	var f commands.PostUoWFactory = FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectPostCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.PostUoWFactory = FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.PostUoWFactory = FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeletePostCommandHandler() commands.DeletePostCommandHandler {
	var f commands.PostUoWFactory = FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePostCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterNgoCommandHandler() commands.RegisterNgoCommandHandler {
	var f commands.NgoUoWFactory = FuncNgoUoWFactory(func() commands.NgoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterNgoCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPendingPostsCommandHandler() commands.AssignPendingPostsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingPostsCommandHandler(f, c.resolver, c.notifier)
}

func (c *CompositionRoot) CreateGetPostsAssignedToNgoQueryHandler() queries.GetPostsAssignedToNgoQueryHandler {
	return queries.NewGetPostsAssignedToNgoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPostsAssignedToDeliveryQueryHandler() queries.GetPostsAssignedToDeliveryQueryHandler {
	return queries.NewGetPostsAssignedToDeliveryQueryHandler(c.gormDB)
}

// CreateNgoListHandler returns the cached listing when Redis is configured,
// the plain database-backed one otherwise.
func (c *CompositionRoot) CreateNgoListHandler() httpadapter.NgoListHandler {
	if c.ngoCache != nil {
		return c.ngoCache
	}
	return queries.NewGetAllNgosQueryHandler(c.gormDB)
}

// NgoDirectoryInvalidator returns the cache invalidator, or nil when
// caching is off.
func (c *CompositionRoot) NgoDirectoryInvalidator() httpadapter.NgoDirectoryInvalidator {
	if c.ngoCache != nil {
		return c.ngoCache
	}
	return nil
}

type FuncPostUoWFactory func() commands.PostUoW

func (f FuncPostUoWFactory) Create() commands.PostUoW {
	return f()
}

type FuncNgoUoWFactory func() commands.NgoUoW

func (f FuncNgoUoWFactory) Create() commands.NgoUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
