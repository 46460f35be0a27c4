package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listNotificationsHandler struct {
	logger *logrus.Logger
	inbox  appnotification.Inbox
}

func NewListNotificationsHandler(logger *logrus.Logger, inbox appnotification.Inbox) Handler {
	return &listNotificationsHandler{
		logger: logger,
		inbox:  inbox,
	}
}

// Handle @Summary List notifications
// @Description Returns the caller's notifications, newest first
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} appnotification.Page
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/notifications [get]
func (h *listNotificationsHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	page, err := h.inbox.List(c.Context(), userID, c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.logger, err, "list notifications")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
