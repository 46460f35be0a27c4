package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification/mocks"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	mu   sync.Mutex
	sent [][]byte
}

func (c *recordingConn) ID() string { return "conn-1" }

func (c *recordingConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, payload)
	return nil
}

func (c *recordingConn) IsOpen() bool { return true }
func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) frames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.sent...)
}

type dispatcherFixture struct {
	repo     *mocks.Repository
	prefRepo *mocks.PreferencesRepository
	registry *websocket.Registry
	conn     *recordingConn
	d        Dispatcher
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func clockAt(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
	}
}

func newDispatcherFixture(t *testing.T, now func() time.Time, prefs *domain.Preferences) *dispatcherFixture {
	t.Helper()
	logger := newTestLogger()
	f := &dispatcherFixture{
		repo:     mocks.NewRepository(t),
		prefRepo: mocks.NewPreferencesRepository(t),
		registry: websocket.NewRegistry(logger),
		conn:     &recordingConn{},
	}
	f.registry.Register("U", f.conn)
	f.prefRepo.EXPECT().Get(mock.Anything, "U").Return(prefs, nil).Maybe()

	prefService := NewPreferencesService(logger, f.prefRepo, nil, time.Second, nil)
	f.d = NewDispatcher(logger, f.repo, prefService, NewLocalPusher(f.registry), time.Second, &DispatcherOpts{
		TimeProvider: now,
	})
	return f
}

func quiet(start, end string) *domain.Preferences {
	p := domain.DefaultPreferences("U", time.Now())
	p.QuietHoursStart = &start
	p.QuietHoursEnd = &end
	return p
}

func TestDispatcher_TipEndToEnd(t *testing.T) {
	f := newDispatcherFixture(t, clockAt(12, 0), domain.DefaultPreferences("U", time.Now()))

	var stored *domain.Notification
	f.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Run(func(_ context.Context, n *domain.Notification) { stored = n }).
		Return(nil).Once()

	n, err := f.d.CreateAndDispatch(context.Background(), domain.Draft{
		RecipientID: "U",
		Type:        domain.TypeTip,
		Title:       "X tipped you!",
		Body:        "You received a $10 tip from X",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored, n)
	assert.False(t, n.IsRead)
	assert.Equal(t, domain.TypeTip, n.Type)

	frames := f.conn.frames()
	require.Len(t, frames, 1)
	var msg struct {
		Type         string                 `json:"type"`
		Notification map[string]interface{} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(frames[0], &msg))
	assert.Equal(t, "notification", msg.Type)
	assert.Equal(t, "X tipped you!", msg.Notification["title"])
	assert.Equal(t, "You received a $10 tip from X", msg.Notification["body"])
	assert.Equal(t, "tip", msg.Notification["type"])
	assert.Equal(t, false, msg.Notification["isRead"])
}

func TestDispatcher_NotifyTipFormatting(t *testing.T) {
	f := newDispatcherFixture(t, clockAt(12, 0), domain.DefaultPreferences("U", time.Now()))
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	n, err := f.d.NotifyTip(context.Background(), "U", "X", 10, "tip-42")
	require.NoError(t, err)
	assert.Equal(t, "X tipped you!", n.Title)
	assert.Equal(t, "You received a $10 tip from X", n.Body)
	require.NotNil(t, n.ActionRef)
	assert.Equal(t, "/tips/tip-42", *n.ActionRef)
	assert.Equal(t, float64(10), n.Metadata["amount"])
}

func TestDispatcher_QuietHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		hour, mins int
		pushed     bool
	}{
		{"wrapping window late evening", "22:00", "08:00", 23, 30, false},
		{"wrapping window early morning", "22:00", "08:00", 3, 0, false},
		{"wrapping window midday", "22:00", "08:00", 12, 0, true},
		{"daytime window inside", "09:00", "17:00", 10, 0, false},
		{"daytime window outside", "09:00", "17:00", 20, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture(t, clockAt(tt.hour, tt.mins), quiet(tt.start, tt.end))
			f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

			n, err := f.d.NotifyLike(context.Background(), "U", "X", "c1")
			require.NoError(t, err)
			assert.False(t, n.IsRead, "record is persisted unread either way")
			if tt.pushed {
				assert.Len(t, f.conn.frames(), 1)
			} else {
				assert.Empty(t, f.conn.frames())
			}
		})
	}
}

func TestDispatcher_QuietHoursUseConfiguredZone(t *testing.T) {
	logger := newTestLogger()
	repo := mocks.NewRepository(t)
	prefRepo := mocks.NewPreferencesRepository(t)
	registry := websocket.NewRegistry(logger)
	conn := &recordingConn{}
	registry.Register("U", conn)

	prefRepo.EXPECT().Get(mock.Anything, "U").Return(quiet("22:00", "08:00"), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// 12:00 UTC is 23:00 at UTC+11
	zone := time.FixedZone("UTC+11", 11*3600)
	d := NewDispatcher(logger, repo, NewPreferencesService(logger, prefRepo, nil, 0, nil), NewLocalPusher(registry), 0,
		&DispatcherOpts{TimeProvider: clockAt(12, 0), Location: zone})

	_, err := d.NotifySystem(context.Background(), "U", "Maintenance", "Tonight at 2am")
	require.NoError(t, err)
	assert.Empty(t, conn.frames())
}

func TestDispatcher_TypeToggles(t *testing.T) {
	prefs := domain.DefaultPreferences("U", time.Now())
	prefs.TipsEnabled = false
	prefs.AchievementsEnabled = false

	t.Run("disabled type is not pushed", func(t *testing.T) {
		f := newDispatcherFixture(t, clockAt(12, 0), prefs)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		_, err := f.d.NotifyTip(context.Background(), "U", "X", 5, "")
		require.NoError(t, err)
		assert.Empty(t, f.conn.frames())
	})

	t.Run("milestone follows achievements", func(t *testing.T) {
		f := newDispatcherFixture(t, clockAt(12, 0), prefs)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		_, err := f.d.NotifyMilestone(context.Background(), "U", "subscribers", 1000)
		require.NoError(t, err)
		assert.Empty(t, f.conn.frames())
	})

	t.Run("custom type is eligible", func(t *testing.T) {
		f := newDispatcherFixture(t, clockAt(12, 0), prefs)
		f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		n, err := f.d.CreateAndDispatch(context.Background(), domain.Draft{
			RecipientID: "U",
			Type:        domain.Type("live_stream_started"),
			Title:       "X is live",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Type("live_stream_started"), n.Type)
		assert.Len(t, f.conn.frames(), 1)
	})
}

func TestDispatcher_PersistenceErrorSkipsPush(t *testing.T) {
	f := newDispatcherFixture(t, clockAt(12, 0), domain.DefaultPreferences("U", time.Now()))
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrPersistence, errors.New("connection refused"))).Once()

	n, err := f.d.NotifyComment(context.Background(), "U", "X", "c1", "nice")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, f.conn.frames())
}

func TestDispatcher_CreatesDefaultPreferences(t *testing.T) {
	logger := newTestLogger()
	repo := mocks.NewRepository(t)
	prefRepo := mocks.NewPreferencesRepository(t)
	registry := websocket.NewRegistry(logger)
	conn := &recordingConn{}
	registry.Register("new-user", conn)

	prefRepo.EXPECT().Get(mock.Anything, "new-user").Return(nil, domain.ErrPreferencesNotFound).Once()
	prefRepo.EXPECT().CreateDefault(mock.Anything, "new-user").
		Return(domain.DefaultPreferences("new-user", time.Now()), nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	d := NewDispatcher(logger, repo, NewPreferencesService(logger, prefRepo, nil, 0, nil), NewLocalPusher(registry), 0, nil)
	_, err := d.NotifySubscription(context.Background(), "new-user", "X", "gold")
	require.NoError(t, err)
	assert.Len(t, conn.frames(), 1)
}

func TestDispatcher_PushFailureStillReturnsRecord(t *testing.T) {
	logger := newTestLogger()
	repo := mocks.NewRepository(t)
	prefRepo := mocks.NewPreferencesRepository(t)
	prefRepo.EXPECT().Get(mock.Anything, "U").Return(domain.DefaultPreferences("U", time.Now()), nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	d := NewDispatcher(logger, repo, NewPreferencesService(logger, prefRepo, nil, 0, nil), failingPusher{}, 0, nil)
	n, err := d.NotifyMessage(context.Background(), "U", "X", "hey", "conv-1")
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestDispatcher_InvalidDraft(t *testing.T) {
	d := NewDispatcher(newTestLogger(), mocks.NewRepository(t), nil, nil, 0, nil)
	_, err := d.CreateAndDispatch(context.Background(), domain.Draft{Type: domain.TypeTip, Title: "t"})
	assert.ErrorIs(t, err, domain.ErrInvalidNotification)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$10", formatAmount(10))
	assert.Equal(t, "$9.50", formatAmount(9.5))
}

type failingPusher struct{}

func (failingPusher) Push(context.Context, *domain.Notification) error {
	return errors.New("bus down")
}

func (failingPusher) Broadcast(context.Context, *websocket.Announcement) (int, error) {
	return 0, errors.New("bus down")
}
