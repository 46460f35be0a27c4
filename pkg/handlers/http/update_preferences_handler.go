package http

import (
	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updatePreferencesHandler struct {
	logger      *logrus.Logger
	preferences appnotification.PreferencesService
}

func NewUpdatePreferencesHandler(logger *logrus.Logger, preferences appnotification.PreferencesService) Handler {
	return &updatePreferencesHandler{
		logger:      logger,
		preferences: preferences,
	}
}

// Handle @Summary Update notification preferences
// @Description Merges the provided fields; an empty quiet-hours value clears that bound
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body notification.PreferencesPatch true "Fields to change"
// @Success 200 {object} notification.Preferences
// @Failure 400 {object} map[string]interface{} "Invalid quiet hours"
// @Router /api/v1/notifications/preferences [put]
func (h *updatePreferencesHandler) Handle(c *fiber.Ctx) error {
	userID, err := caller(c)
	if err != nil {
		return unauthorized(c)
	}
	var patch notification.PreferencesPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	prefs, err := h.preferences.Update(c.Context(), userID, patch)
	if err != nil {
		return respondError(c, h.logger, err, "update preferences")
	}
	return c.Status(fiber.StatusOK).JSON(prefs)
}
