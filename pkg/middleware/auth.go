package middleware

import (
	"context"
	"strings"

	"github.com/fanzplatform/fanzcore/pkg/common"
	"github.com/fanzplatform/fanzcore/pkg/infra/auth/jwt"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	tokenQueryParam     = "token"
)

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

// NewAuthMiddleware resolves the caller from a bearer token. Websocket
// upgrades may pass the token as ?token= since browsers cannot set headers
// on the handshake.
func NewAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := bearerToken(ctx)
		if token == "" && websocket.IsWebSocketUpgrade(ctx) {
			token = ctx.Query(tokenQueryParam)
		}
		if token == "" {
			m.logger.Debug("no bearer token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.logger.WithError(err).WithField("trace_id", traceID(ctx)).Debug("invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		setCaller(ctx, claims)
		return ctx.Next()
	}
}

func setCaller(ctx *fiber.Ctx, claims *jwt.Claims) {
	ctx.Locals(common.UserIDContextKey, claims.UserID)
	ctx.Locals(common.ClaimsContextKey, claims)
	c := context.WithValue(ctx.UserContext(), common.UserIDContextKey, claims.UserID)
	ctx.SetUserContext(c)
}

func bearerToken(ctx *fiber.Ctx) string {
	header := ctx.Get(authorizationHeader)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

// CallerID is the authenticated user id, empty when none was resolved.
func CallerID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(common.UserIDContextKey).(string)
	return id
}
