package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type unreadCountHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewUnreadCountHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &unreadCountHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "{count}"
// @Router /api/v1/notifications/unread-count [get]
func (h *unreadCountHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	count, err := h.inbox.UnreadCount(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "count unread notifications")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}
