package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sharebite/cmd"
	httpadapter "sharebite/internal/adapters/in/http"
	"sharebite/internal/adapters/out/blob"
	"sharebite/internal/adapters/out/kafka"
	"sharebite/internal/adapters/out/postgres/ngorepo"
	"sharebite/internal/adapters/out/postgres/postrepo"
	"sharebite/internal/core/ports"
	"sharebite/internal/jobs"

	goredis "github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(&postrepo.PostDTO{}, &ngorepo.NgoDTO{}); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	var lifecycleNotifier ports.Notifier
	if len(config.KafkaBrokers) > 0 {
		kafkaNotifier, kerr := kafka.NewNotifier(config.KafkaBrokers, config.KafkaLifecycleTopic, logger)
		if kerr != nil {
			logger.Error("failed to connect to kafka", "error", kerr)
			os.Exit(1)
		}
		defer kafkaNotifier.Close()
		lifecycleNotifier = kafkaNotifier
	}

	root := cmd.NewCompositionRoot(config, db, lifecycleNotifier, logger)

	if config.RedisAddr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if pingErr := redisClient.Ping(context.Background()).Err(); pingErr != nil {
			logger.Error("failed to connect to redis", "error", pingErr)
			os.Exit(1)
		}
		root.EnableNgoCache(redisClient, config.NgoCacheTTL)
	}

	blobStore, err := blob.NewFsStore(config.ImageDir, config.ImageBaseURL)
	if err != nil {
		logger.Error("failed to prepare image storage", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(root.CreateAssignPendingPostsCommandHandler(), config.SweepSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreatePostCommandHandler(),
		root.CreateAcceptPostCommandHandler(),
		root.CreateRejectPostCommandHandler(),
		root.CreateAssignDeliveryCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateDeletePostCommandHandler(),
		root.CreateRegisterNgoCommandHandler(),
		root.CreateGetPostsAssignedToNgoQueryHandler(),
		root.CreateGetPostsAssignedToDeliveryQueryHandler(),
		root.CreateNgoListHandler(),
		blobStore,
		root.NgoDirectoryInvalidator(),
	)
	server.UseIdentity(httpadapter.HeaderIdentityProvider{})

	e := echo.New()
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Static("/images", config.ImageDir)
	server.RegisterRoutes(e)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); serveErr != nil {
			logger.Info("http server stopped", "error", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err = e.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
