package server

import (
	"context"
	"fmt"

	"github.com/fanzplatform/fanzcore/pkg/config"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/fanzplatform/fanzcore/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport *middleware.Transport
		Routers             []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

// NewAPIServer mounts the global middleware chain, the health routes and
// every router on one fiber app. Route order matters: global handlers must
// be registered before anything they wrap.
func NewAPIServer(di APIServerDI) (*APIServer, error) {
	s := &APIServer{BaseServer: NewBaseServer(di.Config, di.Logger)}

	if di.MiddlewareTransport != nil {
		if global := di.MiddlewareTransport.Global(); len(global) > 0 {
			s.router.Use(global...)
		}
	}
	s.setupHealthCheck()
	if err := s.withRouters(di.Routers...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *APIServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting api server")
	return s.router.Listen(addr)
}

func (s *APIServer) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}
