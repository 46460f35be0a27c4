package http

import (
	"time"

	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/fanzplatform/fanzcore/pkg/handlers/http/request"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type broadcastHandler struct {
	logger *logrus.Logger
	pusher appnotification.Pusher
}

func NewBroadcastHandler(logger *logrus.Logger, pusher appnotification.Pusher) Handler {
	return &broadcastHandler{
		logger: logger,
		pusher: pusher,
	}
}

// Handle @Summary Broadcast an announcement
// @Description Pushes an announcement to every live connection. Nothing is persisted.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body request.BroadcastRequest true "Announcement"
// @Success 202 {object} map[string]interface{} "{delivered}"
// @Router /api/v1/admin/notifications/broadcast [post]
func (h *broadcastHandler) Handle(c *fiber.Ctx) error {
	var req request.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	delivered, err := h.pusher.Broadcast(c.Context(), &websocket.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Metadata: req.Metadata,
		SentAt:   time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to broadcast announcement")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to broadcast announcement"})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"delivered": delivered})
}
