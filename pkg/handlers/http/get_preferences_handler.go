package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getPreferencesHandler struct {
	logger      *logrus.Logger
	preferences appnotification.PreferencesService
}

func NewGetPreferencesHandler(logger *logrus.Logger, preferences appnotification.PreferencesService) Handler {
	return &getPreferencesHandler{
		logger:      logger,
		preferences: preferences,
	}
}

// Handle @Summary Get notification preferences
// @Description Returns the caller's preferences, creating the defaults on first access
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} notification.Preferences
// @Router /api/v1/notifications/preferences [get]
func (h *getPreferencesHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	prefs, err := h.preferences.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "load preferences")
	}
	return c.Status(fiber.StatusOK).JSON(prefs)
}
