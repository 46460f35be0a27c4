package middleware

import (
	"github.com/fanzplatform/fanzcore/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAdminAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := bearerToken(ctx)
		if token == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.logger.WithError(err).Debug("invalid admin token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		if !claims.IsAdmin() {
			m.logger.WithField("user_id", claims.UserID).Warn("non-admin token on admin route")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin role required"})
		}

		setCaller(ctx, claims)
		return ctx.Next()
	}
}
