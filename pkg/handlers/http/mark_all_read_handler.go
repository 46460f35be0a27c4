package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type markAllReadHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewMarkAllReadHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &markAllReadHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary Mark every notification as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "{updated}"
// @Router /api/v1/notifications/read-all [put]
func (h *markAllReadHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	updated, err := h.inbox.MarkAllRead(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "mark notifications read")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"updated": updated})
}
