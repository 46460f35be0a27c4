package router

import (
	handlers "github.com/fanzplatform/fanzcore/pkg/handlers/http"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil || r.middlewareTransport == nil || r.middlewareTransport.AdminAuthMiddleware == nil {
		return ErrInvalidHandlerTransport
	}
	h := r.handlerTransport

	admin := router.Group("/api/v1/admin", r.middlewareTransport.AdminAuthMiddleware.Middleware())
	{
		notifications := admin.Group("/notifications")
		{
			notifications.Post("", h.CreateNotificationHandler.Handle)
			notifications.Post("/broadcast", h.BroadcastHandler.Handle)
		}

		admin.Post("/events/:kind", h.NotifyEventHandler.Handle)

		rateLimits := admin.Group("/rate-limits")
		{
			rateLimits.Get("/stats", h.RateLimitStatsHandler.Handle)
			rateLimits.Delete("/:key", h.ResetRateLimitHandler.Handle)
		}
	}
	return nil
}
