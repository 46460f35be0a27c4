package router

import (
	"github.com/fanzplatform/fanzcore/pkg/config"
	wsHandlers "github.com/fanzplatform/fanzcore/pkg/handlers/websocket"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const NotificationsSocketPath = "/ws/notifications"

type wsRouter struct {
	middlewareTransport *middleware.Transport
	wsHandlerTransport  wsHandlers.HandlerTransport
	config              *config.WebSocketConfig
}

func NewWebsocketRouter(
	middlewareTransport *middleware.Transport,
	wsHandlerTransport wsHandlers.HandlerTransport,
	cfg *config.WebSocketConfig,
) ServerRouter {
	return &wsRouter{
		middlewareTransport: middlewareTransport,
		wsHandlerTransport:  wsHandlerTransport,
		config:              cfg,
	}
}

func (r *wsRouter) BuildRoutes(router *fiber.App) error {
	transport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok || transport.NotificationsHandler == nil {
		return ErrInvalidHandlerTransport
	}
	if r.middlewareTransport.AuthMiddleware == nil || r.middlewareTransport.WebsocketMiddleware == nil {
		return ErrInvalidHandlerTransport
	}

	// auth runs first so a rejected token never takes a connection slot
	router.Get(NotificationsSocketPath,
		r.middlewareTransport.AuthMiddleware.Middleware(),
		r.middlewareTransport.WebsocketMiddleware.Middleware(),
		websocket.New(transport.NotificationsHandler.Handle, websocket.Config{
			HandshakeTimeout: r.config.HandshakeTimeout,
			ReadBufferSize:   r.config.ReadBufferSize,
			WriteBufferSize:  r.config.WriteBufferSize,
		}),
	)
	return nil
}
