package notification

import (
	"context"
	"fmt"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
)

// Pusher delivers persisted records to live connections, either on this
// instance or through the pub/sub bus to every instance.
//
//go:generate mockery --name=Pusher --dir=. --output=./mocks --filename=pusher_mock.go --case=underscore --with-expecter
type Pusher interface {
	Push(ctx context.Context, n *domain.Notification) error
	Broadcast(ctx context.Context, a *websocket.Announcement) (int, error)
}

type localPusher struct {
	registry *websocket.Registry
}

func NewLocalPusher(registry *websocket.Registry) Pusher {
	return &localPusher{registry: registry}
}

func (p *localPusher) Push(_ context.Context, n *domain.Notification) error {
	_, err := p.registry.PushToUser(n.RecipientID, websocket.NotificationMessage(n))
	return err
}

func (p *localPusher) Broadcast(_ context.Context, a *websocket.Announcement) (int, error) {
	return p.registry.Broadcast(websocket.AnnouncementMessage(a))
}

type redisPusher struct {
	publisher cache.EventPublisher
	channel   channel.Channel
}

// NewRedisPusher publishes push requests; the listener on each instance
// performs the local push. Broadcast reports 0 since delivery happens
// remotely.
func NewRedisPusher(publisher cache.EventPublisher, ch channel.Channel) Pusher {
	if ch == "" {
		ch = channel.NotificationsChannel
	}
	return &redisPusher{
		publisher: publisher,
		channel:   ch,
	}
}

func (p *redisPusher) Push(ctx context.Context, n *domain.Notification) error {
	err := p.publisher.Publish(ctx, p.channel, event.NotificationPushEvent{
		RecipientID:  n.RecipientID,
		Notification: n,
	})
	if err != nil {
		return fmt.Errorf("fan-out push: %w", err)
	}
	return nil
}

func (p *redisPusher) Broadcast(ctx context.Context, a *websocket.Announcement) (int, error) {
	err := p.publisher.Publish(ctx, p.channel, event.BroadcastEvent{
		Title:    a.Title,
		Body:     a.Body,
		Metadata: a.Metadata,
		SentAt:   a.SentAt,
	})
	if err != nil {
		return 0, fmt.Errorf("fan-out broadcast: %w", err)
	}
	return 0, nil
}
