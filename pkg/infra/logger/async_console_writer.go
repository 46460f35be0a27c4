package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors every entry to the console without making the
// logging call wait on the terminal.
type AsyncConsoleHook struct {
	out   io.Writer
	lines chan string
	stop  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	return newAsyncConsoleHook(os.Stdout, bufferSize)
}

func newAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	h := &AsyncConsoleHook{
		out:   out,
		lines: make(chan string, bufferSize),
		stop:  make(chan struct{}),
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	select {
	case h.lines <- line:
	default:
	}
	return nil
}

func (h *AsyncConsoleHook) run() {
	defer h.wg.Done()
	for {
		select {
		case line := <-h.lines:
			_, _ = io.WriteString(h.out, line)
		case <-h.stop:
			for {
				select {
				case line := <-h.lines:
					_, _ = io.WriteString(h.out, line)
				default:
					return
				}
			}
		}
	}
}

func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.stop)
		h.wg.Wait()
	})
}
