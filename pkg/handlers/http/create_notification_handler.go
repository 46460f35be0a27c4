package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/fanzplatform/fanzcore/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createNotificationHandler struct {
	logger     *logrus.Logger
	dispatcher appnotification.Dispatcher
}

func NewCreateNotificationHandler(logger *logrus.Logger, dispatcher appnotification.Dispatcher) Handler {
	return &createNotificationHandler{
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// Handle @Summary Create and dispatch a notification
// @Description Persists a record for the recipient and pushes it live when their preferences allow
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notification body request.CreateNotificationRequest true "Notification"
// @Success 201 {object} notification.Notification
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/notifications [post]
func (h *createNotificationHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	n, err := h.dispatcher.CreateAndDispatch(c.Context(), req.Draft())
	if err != nil {
		return respondError(c, h.logger, err, "create notification")
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}
