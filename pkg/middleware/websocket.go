package middleware

import (
	"github.com/fanzplatform/fanzcore/pkg/common"
	infra "github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware admits upgrade requests while a connection slot is
// free. Once upgraded, the slot travels in Locals and the websocket handler
// releases it on close; a failed handshake releases it here.
func NewWebsocketMiddleware(logger *logrus.Logger, semaphore *infra.Semaphore) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.semaphore.Acquire() {
			m.logger.WithField("open", m.semaphore.GetCurrentConnections()).
				Warn("maximum websocket connections reached, rejecting connection")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many live connections"})
		}
		// websocket.Conn only carries string-keyed locals
		c.Locals(string(common.WsSemaphoreKey), m.semaphore)
		c.Locals(string(common.UserIDContextKey), CallerID(c))

		err := c.Next()
		if c.Response().StatusCode() != fiber.StatusSwitchingProtocols {
			m.semaphore.Release()
		}
		return err
	}
}
