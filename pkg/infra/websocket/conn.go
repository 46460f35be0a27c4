package websocket

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Conn is one live realtime connection. Send must be safe for concurrent use.
type Conn interface {
	ID() string
	Send(payload []byte) error
	IsOpen() bool
	Close() error
}

// FiberConn adapts a Fiber websocket connection. Writes are serialized by
// its own mutex since the underlying connection allows one writer at a time.
type FiberConn struct {
	id           string
	conn         *websocket.Conn
	writeTimeout time.Duration
	mu           sync.Mutex
	closed       atomic.Bool
}

func NewFiberConn(conn *websocket.Conn, writeTimeout time.Duration) *FiberConn {
	return &FiberConn{
		id:           uuid.NewString(),
		conn:         conn,
		writeTimeout: writeTimeout,
	}
}

func (c *FiberConn) ID() string {
	return c.id
}

func (c *FiberConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return ErrConnClosed
	}
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.closed.Store(true)
		return err
	}
	return nil
}

func (c *FiberConn) IsOpen() bool {
	return !c.closed.Load()
}

func (c *FiberConn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	return c.conn.Close()
}
