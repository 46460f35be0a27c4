package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fanzplatform/fanzcore/pkg/config"
	"github.com/fanzplatform/fanzcore/pkg/dependency_container"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/fanzplatform/fanzcore/pkg/infra/database"
	infraLogger "github.com/fanzplatform/fanzcore/pkg/infra/logger"
	_ "github.com/fanzplatform/fanzcore/pkg/infra/migrations"
	"github.com/fanzplatform/fanzcore/pkg/server"
	"github.com/fanzplatform/fanzcore/pkg/server/router"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, closeLogger, err := infraLogger.NewLogger(getServerType())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	if err := run(logger); err != nil {
		logger.WithError(err).Error("fanzcore stopped with error")
		closeLogger()
		os.Exit(1)
	}
	logger.Info("fanzcore gracefully stopped")
}

func run(logger *logrus.Logger) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		DBName:       cfg.Database.DBName,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		ConnLifetime: cfg.Database.ConnLifetime,
	})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var cacheClient cache.Client
	if cfg.RateLimit.Store == config.StoreRedis || cfg.Notifications.Fanout == config.FanoutRedis {
		cacheClient, err = cache.NewClient(cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		}, logger)
		if err != nil {
			return err
		}
		defer func() { _ = cacheClient.Close() }()
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
		Cache:  cacheClient,
	})
	if err != nil {
		return err
	}

	apiServer, err := server.NewAPIServer(server.APIServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: container.MiddlewareTransport,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport),
			router.NewAdminRouter(container.MiddlewareTransport, container.HandlerTransport),
			router.NewWebsocketRouter(container.MiddlewareTransport, container.WSHandlerTransport, &cfg.WebSocket),
		},
	})
	if err != nil {
		return err
	}
	servers := []server.Server{apiServer}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(cfg, logger))
	} else {
		logger.Info("prometheus metrics are disabled by configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(srv.Run)
	}
	if container.RedisListener != nil {
		g.Go(func() error {
			logger.WithField("channel", container.EventsChannel).Info("listening for notification fan-out events")
			return container.RedisListener.Listen(gctx, container.EventsChannel)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "api"
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config"
}
