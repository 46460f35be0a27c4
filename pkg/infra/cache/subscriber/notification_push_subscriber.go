package subscriber

import (
	"context"
	"errors"

	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
)

var ErrEmptyPushEvent = errors.New("notification push event without recipient or record")

// LocalPusher is the slice of the connection registry subscribers write to.
type LocalPusher interface {
	PushToUser(userID string, payload interface{}) (int, error)
	Broadcast(payload interface{}) (int, error)
}

type NotificationPushEventSubscriber struct {
	logger *logrus.Logger
	pusher LocalPusher
}

func NewNotificationPushEventSubscriber(
	logger *logrus.Logger,
	pusher LocalPusher,
) cache.EventSubscriber[event.NotificationPushEvent] {
	return &NotificationPushEventSubscriber{
		logger: logger,
		pusher: pusher,
	}
}

func (s NotificationPushEventSubscriber) OnEvent(ctx context.Context, ev event.NotificationPushEvent) error {
	if ev.RecipientID == "" || ev.Notification == nil {
		return ErrEmptyPushEvent
	}
	delivered, err := s.pusher.PushToUser(ev.RecipientID, websocket.NotificationMessage(ev.Notification))
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"recipient_id":    ev.RecipientID,
		"notification_id": ev.Notification.ID,
		"delivered":       delivered,
	}).Debug("fan-out notification pushed to local connections")
	return nil
}
