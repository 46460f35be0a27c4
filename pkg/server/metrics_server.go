package server

import (
	"context"
	"fmt"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/config"
	"github.com/fanzplatform/fanzcore/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const MetricsPath = "/metrics"

type MetricsServer struct {
	config *config.Config
	logger *logrus.Logger
	app    *fiber.App
}

// NewMetricsServer serves the fanzcore registry on its own port so scrapes
// never go through the rate limiter.
func NewMetricsServer(cfg *config.Config, logger *logrus.Logger) *MetricsServer {
	prometheus.Initialize()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})
	app.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(prometheus.Registry(), promhttp.HandlerOpts{
		ErrorLog: logger,
	}))
	app.Get(MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})

	return &MetricsServer{config: cfg, logger: logger, app: app}
}

func (s *MetricsServer) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Metrics.Port)
	s.logger.WithField("addr", addr).Info("starting metrics server")
	return s.app.Listen(addr)
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if deadline, ok := ctx.Deadline(); ok {
		return s.app.ShutdownWithTimeout(time.Until(deadline))
	}
	return s.app.Shutdown()
}
