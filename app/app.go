package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gigflow/internal/config"
	"gigflow/internal/controller"
	"gigflow/internal/lifecycle"
	"gigflow/internal/notify"
	"gigflow/internal/repo"
	"gigflow/internal/service"
	"gigflow/pkg/http_server"
	"gigflow/pkg/logger"
	"gigflow/pkg/metrics"
	"gigflow/pkg/postgres"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// Run starts the service and blocks until it receives SIGINT or SIGTERM.
func Run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repositories, closeStorage, err := setupStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	inbox, closeInbox, err := setupInbox(cfg, log)
	if err != nil {
		return err
	}
	defer closeInbox()

	m := metrics.NewManager()
	services := service.NewServices(service.Dependencies{
		Repos:   repositories,
		Inbox:   inbox,
		Metrics: m,
		Logger:  log,
		Manager: lifecycle.NewManager(),
	})

	handler := echo.New()
	log.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, controller.Options{
		Logger:    log,
		Metrics:   m,
		RateLimit: cfg.RateLimit,
	})

	log.Info("Starting server...", zap.String("addr", cfg.Addr))
	httpServer := http_server.New(handler, cfg.Addr, http_server.ShutdownTimeout(cfg.ShutdownTimeout))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("Got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		return fmt.Errorf("http server: %w", err)
	}

	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Successful shutdown")

	return nil
}

func setupStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repo.Repositories, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Info("Using in-memory storage")
		return repo.NewMemoryRepositories(), func() {}, nil
	}

	log.Info("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.Postgres.URL, postgres.MaxOpenConns(cfg.Postgres.MaxOpenConns))
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if err := postgresDB.Close(); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}

	if err := postgresDB.Ping(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("Running migrations...", zap.String("source", cfg.Postgres.MigrationsPath))
	applied, err := postgresDB.Migrate(cfg.Postgres.MigrationsPath, cfg.Postgres.Database)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	if !applied {
		log.Info("no change made by migration scripts")
	}

	return repo.NewRepositories(postgresDB), closeDB, nil
}

func setupInbox(cfg *config.Config, log *zap.Logger) (notify.Inbox, func(), error) {
	if cfg.Notifier.Driver != config.NotifierRedis {
		return notify.NewMemoryInbox(cfg.Redis.InboxSize), func() {}, nil
	}

	inbox, err := notify.NewRedisInbox(cfg.Redis, log.Named("inbox"))
	if err != nil {
		return nil, nil, err
	}

	return inbox, func() {
		if err := inbox.Close(); err != nil {
			log.Warn("closing redis", zap.Error(err))
		}
	}, nil
}
