package http

import (
	appratelimit "github.com/fanzplatform/fanzcore/pkg/app/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitStatsHandler struct {
	logger *logrus.Logger
	guard  appratelimit.Guard
}

func NewRateLimitStatsHandler(logger *logrus.Logger, guard appratelimit.Guard) Handler {
	return &rateLimitStatsHandler{
		logger: logger,
		guard:  guard,
	}
}

// Handle @Summary Rate limit statistics
// @Description Live keys and counted requests per bucket
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]ratelimit.BucketStats
// @Router /api/v1/admin/rate-limits/stats [get]
func (h *rateLimitStatsHandler) Handle(c *fiber.Ctx) error {
	stats, err := h.guard.GetStatistics(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to collect rate limit statistics")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "failed to collect rate limit statistics"})
	}
	out := make(map[ratelimit.Bucket]ratelimit.BucketStats, len(ratelimit.Buckets))
	for _, b := range ratelimit.Buckets {
		out[b] = stats[b]
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
