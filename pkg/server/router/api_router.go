package router

import (
	handlers "github.com/fanzplatform/fanzcore/pkg/handlers/http"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	SwaggerPath = "/swagger.json"
	DocsPath    = "/docs/*"
	VersionPath = "/api/v1/version"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil || r.middlewareTransport == nil || r.middlewareTransport.AuthMiddleware == nil {
		return ErrInvalidHandlerTransport
	}
	h := r.handlerTransport

	router.Static(SwaggerPath, "./docs/swagger.json")
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: SwaggerPath,
	}))
	router.Get(VersionPath, h.GetVersionHandler.Handle)

	notifications := router.Group("/api/v1/notifications", r.middlewareTransport.AuthMiddleware.Middleware())
	{
		notifications.Get("", h.ListNotificationsHandler.Handle)
		notifications.Delete("", h.DeleteAllNotificationsHandler.Handle)
		notifications.Get("/unread-count", h.UnreadCountHandler.Handle)
		notifications.Put("/read-all", h.MarkAllReadHandler.Handle)

		// registered before /:id so "preferences" is never parsed as an id
		notifications.Get("/preferences", h.GetPreferencesHandler.Handle)
		notifications.Put("/preferences", h.UpdatePreferencesHandler.Handle)

		notifications.Put("/:id/read", h.MarkReadHandler.Handle)
		notifications.Delete("/:id", h.DeleteNotificationHandler.Handle)
	}
	return nil
}
