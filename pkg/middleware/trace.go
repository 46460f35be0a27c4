package middleware

import (
	"context"

	"github.com/fanzplatform/fanzcore/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type traceMiddleware struct{}

// NewTraceMiddleware tags each request with a trace id, reusing an inbound
// X-Request-ID when the edge already set one.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		ctx.Locals(common.TraceIdKey, id)
		ctx.Set(RequestIDHeader, id)

		c := context.WithValue(ctx.UserContext(), common.TraceIdKey, id)
		ctx.SetUserContext(c)
		return ctx.Next()
	}
}

func traceID(c *fiber.Ctx) string {
	id, _ := c.Locals(common.TraceIdKey).(string)
	return id
}
