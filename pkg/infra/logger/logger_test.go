package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.in))
		})
	}
}

func TestAsyncConsoleHook_DropsWhenFull(t *testing.T) {
	hook := &AsyncConsoleHook{
		lines: make(chan string, 1),
		stop:  make(chan struct{}),
	}
	entry := logrus.NewEntry(logrus.New())
	entry.Message = "first"

	assert.NoError(t, hook.Fire(entry))
	assert.NoError(t, hook.Fire(entry))
	assert.Len(t, hook.lines, 1)
}

func TestAsyncConsoleHook_CloseDrains(t *testing.T) {
	var out syncBuffer
	hook := newAsyncConsoleHook(&out, 16)
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(hook)

	l.Info("one")
	l.Info("two")
	hook.Close()
	hook.Close()

	assert.Contains(t, out.String(), "one")
	assert.Contains(t, out.String(), "two")
}

func TestAsyncFileWriter_CloseFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	w, err := NewAsyncFileWriter(path, 64)
	require.NoError(t, err)

	buf := []byte("line-1\n")
	_, err = w.Write(buf)
	require.NoError(t, err)
	copy(buf, "XXXXXX")
	_, _ = w.Write([]byte("line-2\n"))
	w.Close()
	w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line-1\nline-2\n", string(data))
	assert.Zero(t, w.Dropped())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
