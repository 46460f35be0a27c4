package subscriber

import (
	"context"

	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
)

type BroadcastEventSubscriber struct {
	logger *logrus.Logger
	pusher LocalPusher
}

func NewBroadcastEventSubscriber(
	logger *logrus.Logger,
	pusher LocalPusher,
) cache.EventSubscriber[event.BroadcastEvent] {
	return &BroadcastEventSubscriber{
		logger: logger,
		pusher: pusher,
	}
}

func (s BroadcastEventSubscriber) OnEvent(ctx context.Context, ev event.BroadcastEvent) error {
	delivered, err := s.pusher.Broadcast(websocket.AnnouncementMessage(&websocket.Announcement{
		Title:    ev.Title,
		Body:     ev.Body,
		Metadata: ev.Metadata,
		SentAt:   ev.SentAt,
	}))
	if err != nil {
		return err
	}
	s.logger.WithField("delivered", delivered).Info("announcement broadcast to local connections")
	return nil
}
