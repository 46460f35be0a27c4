package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	cachemocks "github.com/fanzplatform/fanzcore/pkg/infra/cache/mocks"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedisPusher_PublishesPushEvent(t *testing.T) {
	publisher := cachemocks.NewEventPublisher(t)
	n := &domain.Notification{ID: uuid.New(), RecipientID: "U", Type: domain.TypeTip, Title: "X tipped you!"}

	publisher.EXPECT().Publish(mock.Anything, channel.NotificationsChannel, mock.MatchedBy(func(ev event.Event) bool {
		push, ok := ev.(event.NotificationPushEvent)
		return ok && push.RecipientID == "U" && push.Notification == n
	})).Return(nil).Once()

	require.NoError(t, NewRedisPusher(publisher, "").Push(context.Background(), n))
}

func TestRedisPusher_BroadcastError(t *testing.T) {
	publisher := cachemocks.NewEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, channel.Channel("custom"), mock.AnythingOfType("event.BroadcastEvent")).
		Return(errors.New("redis down")).Once()

	_, err := NewRedisPusher(publisher, "custom").Broadcast(context.Background(), &websocket.Announcement{
		Title:  "Scheduled maintenance",
		SentAt: time.Now(),
	})
	assert.ErrorContains(t, err, "redis down")
}

func TestLocalPusher_Broadcast(t *testing.T) {
	registry := websocket.NewRegistry(newTestLogger())
	a, b := &recordingConn{}, &recordingConn{}
	registry.Register("U1", a)
	registry.Register("U2", b)

	delivered, err := NewLocalPusher(registry).Broadcast(context.Background(), &websocket.Announcement{Title: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
	assert.Len(t, a.frames(), 1)
	assert.Len(t, b.frames(), 1)
}
