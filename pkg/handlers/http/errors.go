package http

import (
	"errors"

	"github.com/fanzplatform/fanzcore/pkg/domain"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// caller returns the authenticated user id or domain.ErrUnauthorized.
func caller(c *fiber.Ctx) (string, error) {
	id := middleware.CallerID(c)
	if id == "" {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

func notificationID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
}

// respondError maps notification errors onto status codes. Anything
// unexpected is logged and reported as "failed to <action>".
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c)
	case errors.Is(err, notification.ErrNotificationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	case errors.Is(err, notification.ErrInvalidQuietHours),
		errors.Is(err, notification.ErrInvalidNotification):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithError(err).WithField("path", c.Path()).Error("failed to " + action)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to " + action})
}
