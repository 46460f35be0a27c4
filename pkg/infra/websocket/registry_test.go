package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id       string
	mu       sync.Mutex
	sent     [][]byte
	failWith error
	closed   bool
}

func newFakeConn(id string) *fakeConn { return &fakeConn{id: id} }

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return c.failWith
	}
	c.sent = append(c.sent, payload)
	return nil
}

func (c *fakeConn) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.sent...)
}

func newTestRegistry() *Registry {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewRegistry(logger)
}

func TestRegistry_DeregisterDropsEmptyUser(t *testing.T) {
	r := newTestRegistry()
	c1, c2 := newFakeConn("c1"), newFakeConn("c2")

	r.Register("creator-1", c1)
	r.Register("creator-1", c2)
	assert.Len(t, r.Connections("creator-1"), 2)
	assert.Equal(t, 2, r.Count())

	r.Deregister("creator-1", c1)
	assert.True(t, r.HasUser("creator-1"))

	r.Deregister("creator-1", c2)
	assert.False(t, r.HasUser("creator-1"))
	assert.Empty(t, r.Connections("creator-1"))
	assert.Equal(t, 0, r.UserCount())

	// unknown pairs are ignored
	r.Deregister("creator-1", c2)
	r.Deregister("nobody", c1)
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConnBelongsToOneUser(t *testing.T) {
	r := newTestRegistry()
	c := newFakeConn("c")

	r.Register("a", c)
	r.Register("b", c)

	assert.False(t, r.HasUser("a"))
	assert.Len(t, r.Connections("b"), 1)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_PushToUser(t *testing.T) {
	r := newTestRegistry()
	mine1, mine2, other := newFakeConn("m1"), newFakeConn("m2"), newFakeConn("o")
	r.Register("creator-1", mine1)
	r.Register("creator-1", mine2)
	r.Register("creator-2", other)

	n := notification.NewNotification(notification.Draft{
		RecipientID: "creator-1",
		Type:        notification.TypeTip,
		Title:       "New tip",
		Body:        "fan sent $5.00",
	}, time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC))

	delivered, err := r.PushToUser("creator-1", NotificationMessage(n))
	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
	assert.Empty(t, other.messages())

	var got Message
	require.Len(t, mine1.messages(), 1)
	require.NoError(t, json.Unmarshal(mine1.messages()[0], &got))
	assert.Equal(t, MessageTypeNotification, got.Type)
	require.NotNil(t, got.Notification)
	assert.Equal(t, n.ID, got.Notification.ID)
}

func TestRegistry_PushToUserWithoutConnections(t *testing.T) {
	r := newTestRegistry()
	delivered, err := r.PushToUser("ghost", Message{Type: MessageTypeNotification})
	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

func TestRegistry_FailingConnDoesNotBlockOthers(t *testing.T) {
	r := newTestRegistry()
	broken := newFakeConn("broken")
	broken.failWith = errors.New("broken pipe")
	healthy := newFakeConn("healthy")
	closed := newFakeConn("closed")
	_ = closed.Close()

	r.Register("fan-1", broken)
	r.Register("fan-1", healthy)
	r.Register("fan-1", closed)

	delivered, err := r.PushToUser("fan-1", []byte(`{"type":"notification"}`))
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Len(t, healthy.messages(), 1)
	assert.Equal(t, []Conn{healthy}, r.Connections("fan-1"))
}

func TestRegistry_Broadcast(t *testing.T) {
	r := newTestRegistry()
	conns := make([]*fakeConn, 0, 4)
	for i := 0; i < 4; i++ {
		c := newFakeConn(fmt.Sprintf("c%d", i))
		conns = append(conns, c)
		r.Register(fmt.Sprintf("user-%d", i%2), c)
	}

	delivered, err := r.Broadcast(Message{Type: MessageTypeAnnouncement, Announcement: &Announcement{Title: "Maintenance"}})
	require.NoError(t, err)
	assert.Equal(t, 4, delivered)
	for _, c := range conns {
		assert.Len(t, c.messages(), 1)
	}
}

func TestRegistry_ConcurrentRegisterAndPush(t *testing.T) {
	r := newTestRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		c := newFakeConn(fmt.Sprintf("c%d", i))
		go func() {
			defer wg.Done()
			r.Register("busy", c)
			r.Deregister("busy", c)
		}()
		go func() {
			defer wg.Done()
			_, _ = r.PushToUser("busy", []byte("{}"))
		}()
	}
	wg.Wait()
	assert.False(t, r.HasUser("busy"))
}

func TestSemaphore(t *testing.T) {
	s := NewSemaphore(2)
	assert.True(t, s.Acquire())
	assert.True(t, s.Acquire())
	assert.False(t, s.Acquire())
	assert.Equal(t, 2, s.GetCurrentConnections())
	s.Release()
	assert.True(t, s.Acquire())
}
