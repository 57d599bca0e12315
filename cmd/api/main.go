package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/taskflow/taskboard/internal/api"
	"github.com/taskflow/taskboard/internal/core/service"
	"github.com/taskflow/taskboard/internal/infrastructure/config"
	mongodb "github.com/taskflow/taskboard/internal/infrastructure/db/mongo"
	redisdb "github.com/taskflow/taskboard/internal/infrastructure/db/redis"
	"github.com/taskflow/taskboard/internal/infrastructure/queue"
	"github.com/taskflow/taskboard/pkg/logger"
)

// @title        Taskboard API
// @version      1.0
// @description  Task management service: tasks, notifications, dashboards.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	taskRepo := mongodb.NewTaskRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure task indexes")
	}
	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure profile indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Background reminder scan; task-mutation notifications are synchronous
	// and do not go through this path.
	if cfg.ReminderInterval > 0 {
		notificationRepo := mongodb.NewNotificationRepository(db)
		notifier := service.NewNotificationService(notificationRepo, log)
		reminders := service.NewReminderService(taskRepo, notifier, redisdb.NewReminderDedup(rdb), log)
		queue.NewReminderPoller(reminders, cfg.ReminderInterval, log).Start(ctx)
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
