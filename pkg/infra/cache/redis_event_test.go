package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	got []event.NotificationPushEvent
	err error
}

func (s *recordingSubscriber) OnEvent(_ context.Context, ev event.NotificationPushEvent) error {
	s.got = append(s.got, ev)
	return s.err
}

type broadcastRecorder struct {
	got []event.BroadcastEvent
}

func (s *broadcastRecorder) OnEvent(_ context.Context, ev event.BroadcastEvent) error {
	s.got = append(s.got, ev)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestRedisEventPublisher_Publish(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	publisher := NewRedisEventPublisher(NewClientFromRedis(redisMock))

	ev := event.NotificationPushEvent{
		RecipientID:  "creator-1",
		Notification: &notification.Notification{ID: uuid.New(), RecipientID: "creator-1", Type: notification.TypeTip},
	}
	payload, err := EncodeMessage(ev)
	require.NoError(t, err)

	mock.ExpectPublish(string(channel.NotificationsChannel), payload).SetVal(1)

	require.NoError(t, publisher.Publish(context.Background(), channel.NotificationsChannel, ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisEventPublisher_PublishError(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	publisher := NewRedisEventPublisher(NewClientFromRedis(redisMock))

	ev := event.BroadcastEvent{Title: "Maintenance"}
	payload, err := EncodeMessage(ev)
	require.NoError(t, err)
	mock.ExpectPublish("fanz:notifications", payload).SetErr(errors.New("READONLY"))

	err = publisher.Publish(context.Background(), channel.NotificationsChannel, ev)
	assert.ErrorContains(t, err, "notification_broadcast")
}

func TestRedisEventListener_DispatchesByType(t *testing.T) {
	redisMock, _ := redismock.NewClientMock()
	listener := NewRedisEventListener(testLogger(), NewClientFromRedis(redisMock), event.Registry)

	push := &recordingSubscriber{}
	push2 := &recordingSubscriber{err: errors.New("ignored")}
	broadcast := &broadcastRecorder{}
	RegisterEventSubscriber[event.NotificationPushEvent](listener, push)
	RegisterEventSubscriber[event.NotificationPushEvent](listener, push2)
	RegisterEventSubscriber[event.BroadcastEvent](listener, broadcast)

	id := uuid.New()
	raw, err := EncodeMessage(event.NotificationPushEvent{
		RecipientID:  "fan-9",
		Notification: &notification.Notification{ID: id, RecipientID: "fan-9", Type: notification.TypeLike},
	})
	require.NoError(t, err)

	l, ok := listener.(*redisEventListener)
	require.True(t, ok)
	l.HandleMessage(context.Background(), string(raw))

	require.Len(t, push.got, 1)
	assert.Equal(t, "fan-9", push.got[0].RecipientID)
	assert.Equal(t, id, push.got[0].Notification.ID)
	assert.Len(t, push2.got, 1)
	assert.Empty(t, broadcast.got)
}

func TestRedisEventListener_IgnoresBadPayloads(t *testing.T) {
	redisMock, _ := redismock.NewClientMock()
	listener := NewRedisEventListener(testLogger(), NewClientFromRedis(redisMock), event.Registry)
	push := &recordingSubscriber{}
	RegisterEventSubscriber[event.NotificationPushEvent](listener, push)

	l := listener.(*redisEventListener)
	unknown, _ := json.Marshal(RedisMessage{Type: "something_else", Event: json.RawMessage(`{}`)})

	l.HandleMessage(context.Background(), "not json")
	l.HandleMessage(context.Background(), string(unknown))
	l.HandleMessage(context.Background(), `{"type":"notification_push","event":"oops"}`)

	assert.Empty(t, push.got)
}
