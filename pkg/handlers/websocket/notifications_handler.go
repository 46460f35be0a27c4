package websocket

import (
	"encoding/json"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/common"
	infra "github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const maxFrameSize = 4 << 10

type notificationsHandler struct {
	logger       *logrus.Logger
	registry     *infra.Registry
	writeTimeout time.Duration
}

// NewNotificationsHandler serves /ws/notifications. The socket is registered
// under the authenticated user for its whole lifetime; the only client frame
// understood is {"type":"ping"}.
func NewNotificationsHandler(logger *logrus.Logger, registry *infra.Registry, writeTimeout time.Duration) Handler {
	return &notificationsHandler{
		logger:       logger,
		registry:     registry,
		writeTimeout: writeTimeout,
	}
}

func (h *notificationsHandler) Handle(c *websocket.Conn) {
	if sem, ok := c.Locals(string(common.WsSemaphoreKey)).(*infra.Semaphore); ok {
		defer sem.Release()
	}
	userID, _ := c.Locals(string(common.UserIDContextKey)).(string)
	if userID == "" {
		h.logger.Warn("websocket opened without a caller, closing")
		_ = c.Close()
		return
	}

	conn := infra.NewFiberConn(c, h.writeTimeout)
	h.registry.Register(userID, conn)
	defer func() {
		h.registry.Deregister(userID, conn)
		_ = conn.Close()
	}()

	fields := logrus.Fields{"user_id": userID, "conn_id": conn.ID()}
	h.logger.WithFields(fields).Debug("live notification connection opened")

	c.SetReadLimit(maxFrameSize)
	var parser fastjson.Parser
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).WithFields(fields).Debug("live notification connection dropped")
			}
			break
		}
		if err := handleFrame(conn, &parser, msg); err != nil {
			h.logger.WithError(err).WithFields(fields).Debug("failed to answer client frame")
			break
		}
	}
	h.logger.WithFields(fields).Debug("live notification connection closed")
}

// handleFrame answers a single client frame on conn.
func handleFrame(conn infra.Conn, parser *fastjson.Parser, msg []byte) error {
	v, err := parser.ParseBytes(msg)
	if err != nil {
		return reply(conn, infra.Message{Type: infra.MessageTypeError, Error: "malformed frame"})
	}
	switch string(v.GetStringBytes("type")) {
	case infra.MessageTypePing:
		return reply(conn, infra.Message{Type: infra.MessageTypePong})
	default:
		return reply(conn, infra.Message{Type: infra.MessageTypeError, Error: "unsupported frame type"})
	}
}

func reply(conn infra.Conn, m infra.Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return conn.Send(data)
}
