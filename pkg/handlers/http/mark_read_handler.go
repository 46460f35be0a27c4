package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type markReadHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewMarkReadHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &markReadHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "Marked as read"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /api/v1/notifications/{id}/read [put]
func (h *markReadHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := notificationID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}
	if err := h.inbox.MarkRead(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "mark notification read")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
