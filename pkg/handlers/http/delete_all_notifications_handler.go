package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteAllNotificationsHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewDeleteAllNotificationsHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &deleteAllNotificationsHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary Delete every notification of the caller
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "{deleted}"
// @Router /api/v1/notifications [delete]
func (h *deleteAllNotificationsHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	deleted, err := h.inbox.DeleteAll(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "delete notifications")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": deleted})
}
