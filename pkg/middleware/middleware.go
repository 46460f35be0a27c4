package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	TraceMiddleware     Middleware
	RecoverMiddleware   Middleware
	RateLimitMiddleware Middleware
	AuthMiddleware      Middleware
	AdminAuthMiddleware Middleware
	WebsocketMiddleware Middleware
}

// Global returns the handlers every API request passes through, in order.
func (t *Transport) Global() []interface{} {
	var handlers []interface{}
	for _, m := range []Middleware{t.TraceMiddleware, t.RecoverMiddleware, t.RateLimitMiddleware} {
		if m != nil {
			handlers = append(handlers, m.Middleware())
		}
	}
	return handlers
}
