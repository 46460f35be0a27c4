package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteNotificationHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewDeleteNotificationHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &deleteNotificationHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary Delete a notification
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /api/v1/notifications/{id} [delete]
func (h *deleteNotificationHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := notificationID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
	}
	if err := h.inbox.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "delete notification")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
