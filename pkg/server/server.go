package server

import (
	"context"
	"fmt"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/config"
	"github.com/fanzplatform/fanzcore/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	HealthPath = "/health"
	PingPath   = "/__/ping"
)

// Server interface defines the common behavior for all servers
type Server interface {
	Run() error
	Shutdown(ctx context.Context) error
}

type BaseServer struct {
	config *config.Config
	logger *logrus.Logger
	router *fiber.App
}

func NewBaseServer(cfg *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		Concurrency:           16384,
	})

	r.Server().MaxConnsPerIP = 1024
	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		config: cfg,
		logger: logger,
		router: r,
	}
}

// App exposes the underlying fiber app, mainly for tests.
func (s *BaseServer) App() *fiber.App {
	return s.router
}

func (s *BaseServer) setupHealthCheck() {
	s.router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	s.router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})
}

func (s *BaseServer) withRouters(routers ...router.ServerRouter) error {
	for _, r := range routers {
		if err := r.BuildRoutes(s.router); err != nil {
			return fmt.Errorf("build routes: %w", err)
		}
	}
	return nil
}

func (s *BaseServer) shutdown(ctx context.Context) error {
	if deadline, ok := ctx.Deadline(); ok {
		return s.router.ShutdownWithTimeout(time.Until(deadline))
	}
	return s.router.Shutdown()
}
