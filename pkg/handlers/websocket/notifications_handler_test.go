package websocket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

type captureConn struct {
	sent [][]byte
	err  error
}

func (c *captureConn) ID() string { return "capture" }

func (c *captureConn) Send(payload []byte) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, payload)
	return nil
}

func (c *captureConn) IsOpen() bool { return true }
func (c *captureConn) Close() error { return nil }

func TestHandleFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  string
	}{
		{"ping", `{"type":"ping"}`, `{"type":"pong"}`},
		{"unknown type", `{"type":"subscribe"}`, `{"type":"error","error":"unsupported frame type"}`},
		{"no type", `{}`, `{"type":"error","error":"unsupported frame type"}`},
		{"not json", `ping`, `{"type":"error","error":"malformed frame"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &captureConn{}
			var parser fastjson.Parser
			require.NoError(t, handleFrame(conn, &parser, []byte(tt.frame)))
			require.Len(t, conn.sent, 1)
			assert.JSONEq(t, tt.want, string(conn.sent[0]))
		})
	}
}

func TestHandleFrame_SendFailure(t *testing.T) {
	conn := &captureConn{err: errors.New("broken pipe")}
	var parser fastjson.Parser
	assert.Error(t, handleFrame(conn, &parser, []byte(`{"type":"ping"}`)))
}
