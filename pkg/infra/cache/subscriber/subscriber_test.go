package subscriber_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/subscriber"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPusher struct {
	userID    string
	payloads  []interface{}
	broadcast []interface{}
	err       error
}

func (p *stubPusher) PushToUser(userID string, payload interface{}) (int, error) {
	p.userID = userID
	p.payloads = append(p.payloads, payload)
	return 1, p.err
}

func (p *stubPusher) Broadcast(payload interface{}) (int, error) {
	p.broadcast = append(p.broadcast, payload)
	return 3, p.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestNotificationPushEventSubscriber_OnEvent(t *testing.T) {
	pusher := &stubPusher{}
	sub := subscriber.NewNotificationPushEventSubscriber(quietLogger(), pusher)
	n := &notification.Notification{ID: uuid.New(), RecipientID: "creator-1", Type: notification.TypeTip}

	require.NoError(t, sub.OnEvent(context.Background(), event.NotificationPushEvent{RecipientID: "creator-1", Notification: n}))

	assert.Equal(t, "creator-1", pusher.userID)
	require.Len(t, pusher.payloads, 1)
	assert.Equal(t, websocket.NotificationMessage(n), pusher.payloads[0])
}

func TestNotificationPushEventSubscriber_Rejects(t *testing.T) {
	pusher := &stubPusher{}
	sub := subscriber.NewNotificationPushEventSubscriber(quietLogger(), pusher)

	err := sub.OnEvent(context.Background(), event.NotificationPushEvent{RecipientID: "creator-1"})
	assert.ErrorIs(t, err, subscriber.ErrEmptyPushEvent)
	assert.Empty(t, pusher.payloads)

	pusher.err = errors.New("encode")
	err = sub.OnEvent(context.Background(), event.NotificationPushEvent{
		RecipientID:  "creator-1",
		Notification: &notification.Notification{ID: uuid.New()},
	})
	assert.Error(t, err)
}

func TestBroadcastEventSubscriber_OnEvent(t *testing.T) {
	pusher := &stubPusher{}
	sub := subscriber.NewBroadcastEventSubscriber(quietLogger(), pusher)
	sentAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, sub.OnEvent(context.Background(), event.BroadcastEvent{Title: "Maintenance", Body: "tonight", SentAt: sentAt}))

	require.Len(t, pusher.broadcast, 1)
	msg, ok := pusher.broadcast[0].(websocket.Message)
	require.True(t, ok)
	assert.Equal(t, websocket.MessageTypeAnnouncement, msg.Type)
	assert.Equal(t, "Maintenance", msg.Announcement.Title)
	assert.Equal(t, sentAt, msg.Announcement.SentAt)
}
