package http

import (
	"bytes"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	notificationmocks "github.com/fanzplatform/fanzcore/pkg/app/notification/mocks"
	ratelimitmocks "github.com/fanzplatform/fanzcore/pkg/app/ratelimit/mocks"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, target, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestResetRateLimitHandler(t *testing.T) {
	guard := ratelimitmocks.NewGuard(t)
	guard.EXPECT().ResetRateLimit(mock.Anything, "authentication:203.0.113.7:anonymous").Return(true, nil).Once()
	guard.EXPECT().ResetRateLimit(mock.Anything, "bogus").Return(false, ratelimit.ErrInvalidKey).Once()

	app := newApp(fiber.MethodDelete, "/rl/:key", NewResetRateLimitHandler(testLogger(), guard), "ops")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/rl/authentication:203.0.113.7:anonymous", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp.Body)["reset"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/rl/bogus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRateLimitStatsHandler(t *testing.T) {
	guard := ratelimitmocks.NewGuard(t)
	guard.EXPECT().GetStatistics(mock.Anything).Return(map[ratelimit.Bucket]ratelimit.BucketStats{
		ratelimit.BucketAuthentication: {Keys: 2, TotalRequests: 13},
	}, nil).Once()

	resp, err := newApp(fiber.MethodGet, "/stats", NewRateLimitStatsHandler(testLogger(), guard), "ops").
		Test(httptest.NewRequest(fiber.MethodGet, "/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Len(t, body, len(ratelimit.Buckets), "every bucket is reported")
	auth := body["authentication"].(map[string]interface{})
	assert.Equal(t, float64(2), auth["keys"])
	assert.Equal(t, float64(13), auth["totalRequests"])
	search := body["search"].(map[string]interface{})
	assert.Equal(t, float64(0), search["keys"])
}

func TestRateLimitStatsHandler_StoreDown(t *testing.T) {
	guard := ratelimitmocks.NewGuard(t)
	guard.EXPECT().GetStatistics(mock.Anything).Return(nil, ratelimit.ErrCounterStoreUnavailable).Once()

	resp, err := newApp(fiber.MethodGet, "/stats", NewRateLimitStatsHandler(testLogger(), guard), "ops").
		Test(httptest.NewRequest(fiber.MethodGet, "/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestBroadcastHandler(t *testing.T) {
	pusher := notificationmocks.NewPusher(t)
	pusher.EXPECT().Broadcast(mock.Anything, mock.MatchedBy(func(a *websocket.Announcement) bool {
		return a.Title == "Maintenance" && !a.SentAt.IsZero()
	})).Return(3, nil).Once()

	app := newApp(fiber.MethodPost, "/b", NewBroadcastHandler(testLogger(), pusher), "ops")
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/b", `{"title":"Maintenance","body":"at 02:00 UTC"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, float64(3), decode(t, resp.Body)["delivered"])

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/b", `{"body":"no title"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateNotificationHandler(t *testing.T) {
	dispatcher := notificationmocks.NewDispatcher(t)
	dispatcher.EXPECT().CreateAndDispatch(mock.Anything, mock.MatchedBy(func(d notification.Draft) bool {
		return d.RecipientID == "U" && d.Type == notification.Type("live_stream_started")
	})).Return(&notification.Notification{ID: uuid.New(), RecipientID: "U", Type: "live_stream_started", Title: "X is live"}, nil).Once()

	app := newApp(fiber.MethodPost, "/n", NewCreateNotificationHandler(testLogger(), dispatcher), "ops")
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/n", `{"recipientId":"U","type":"live_stream_started","title":"X is live"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, decode(t, resp.Body)["isRead"])

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/n", `{"type":"tip","title":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateNotificationHandler_PersistenceError(t *testing.T) {
	dispatcher := notificationmocks.NewDispatcher(t)
	dispatcher.EXPECT().CreateAndDispatch(mock.Anything, mock.Anything).
		Return(nil, errors.Join(notification.ErrPersistence, errors.New("timeout"))).Once()

	resp, err := newApp(fiber.MethodPost, "/n", NewCreateNotificationHandler(testLogger(), dispatcher), "ops").
		Test(jsonRequest(fiber.MethodPost, "/n", `{"recipientId":"U","type":"tip","title":"t"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestNotifyEventHandler(t *testing.T) {
	dispatcher := notificationmocks.NewDispatcher(t)
	tip := &notification.Notification{ID: uuid.New(), RecipientID: "U", Type: notification.TypeTip, Title: "X tipped you!"}
	dispatcher.EXPECT().NotifyTip(mock.Anything, "U", "X", float64(10), "tip-1").Return(tip, nil).Once()
	dispatcher.EXPECT().NotifyMilestone(mock.Anything, "U", "subscribers", int64(1000)).Return(tip, nil).Once()

	app := newApp(fiber.MethodPost, "/events/:kind", NewNotifyEventHandler(testLogger(), dispatcher), "ops")

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/events/tip", `{"recipientId":"U","actorName":"X","amount":10,"refId":"tip-1"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/events/milestone", `{"recipientId":"U","milestone":"subscribers","value":1000}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/events/tip", `{"recipientId":"U","actorName":"X"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/events/dance", `{"recipientId":"U"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetVersionHandler(t *testing.T) {
	resp, err := newApp(fiber.MethodGet, "/v", NewGetVersionHandler(), "").
		Test(httptest.NewRequest(fiber.MethodGet, "/v", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "fanzcore", decode(t, resp.Body)["app_name"])
}
