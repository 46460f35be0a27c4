package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type notifyEventHandler struct {
	logger     *logrus.Logger
	dispatcher appnotification.Dispatcher
}

func NewNotifyEventHandler(logger *logrus.Logger, dispatcher appnotification.Dispatcher) Handler {
	return &notifyEventHandler{
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// Handle @Summary Notify about a platform event
// @Description Formats a tip, subscription, message, like, comment, achievement, milestone or system event into a notification
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Event kind"
// @Param event body request.NotifyEventRequest true "Event"
// @Success 201 {object} notification.Notification
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/events/{kind} [post]
func (h *notifyEventHandler) Handle(c *fiber.Ctx) error {
	kind := notification.Type(c.Params("kind"))
	var req request.NotifyEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(kind); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var (
		n   *notification.Notification
		err error
		ctx = c.Context()
		d   = h.dispatcher
	)
	switch kind {
	case notification.TypeTip:
		n, err = d.NotifyTip(ctx, req.RecipientID, req.ActorName, req.Amount, req.RefID)
	case notification.TypeSubscription:
		n, err = d.NotifySubscription(ctx, req.RecipientID, req.ActorName, req.Tier)
	case notification.TypeMessage:
		n, err = d.NotifyMessage(ctx, req.RecipientID, req.ActorName, req.Text, req.RefID)
	case notification.TypeLike:
		n, err = d.NotifyLike(ctx, req.RecipientID, req.ActorName, req.RefID)
	case notification.TypeComment:
		n, err = d.NotifyComment(ctx, req.RecipientID, req.ActorName, req.RefID, req.Text)
	case notification.TypeAchievement:
		n, err = d.NotifyAchievement(ctx, req.RecipientID, req.Name, req.Text)
	case notification.TypeMilestone:
		n, err = d.NotifyMilestone(ctx, req.RecipientID, req.Milestone, req.Value)
	case notification.TypeSystem:
		n, err = d.NotifySystem(ctx, req.RecipientID, req.Title, req.Text)
	}
	if err != nil {
		return respondError(c, h.logger, err, "notify "+kind.String())
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}
