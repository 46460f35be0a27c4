package http

import (
	"errors"
	"net/url"

	appratelimit "github.com/fanzplatform/fanzcore/pkg/app/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type resetRateLimitHandler struct {
	logger *logrus.Logger
	guard  appratelimit.Guard
}

func NewResetRateLimitHandler(logger *logrus.Logger, guard appratelimit.Guard) Handler {
	return &resetRateLimitHandler{
		logger: logger,
		guard:  guard,
	}
}

// Handle @Summary Reset a rate limit counter
// @Description Deletes the window for a key such as authentication:203.0.113.7:anonymous
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "Counter key, URL encoded"
// @Success 200 {object} map[string]interface{} "{key, reset}"
// @Failure 400 {object} map[string]interface{} "Invalid key"
// @Router /api/v1/admin/rate-limits/{key} [delete]
func (h *resetRateLimitHandler) Handle(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil || key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid key"})
	}
	existed, err := h.guard.ResetRateLimit(c.Context(), key)
	if err != nil {
		if errors.Is(err, ratelimit.ErrInvalidKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("key", key).Error("failed to reset rate limit")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "failed to reset rate limit"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"key": key, "reset": existed})
}
