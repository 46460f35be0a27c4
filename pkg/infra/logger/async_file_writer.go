package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	fileQueueSize     = 1000
	fileFlushInterval = 2 * time.Second
)

// AsyncFileWriter queues log lines and writes them from one goroutine.
// Lines arriving while the queue is full are dropped and counted.
type AsyncFileWriter struct {
	file    *os.File
	buf     *bufio.Writer
	lines   chan []byte
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

func NewAsyncFileWriter(path string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	w := &AsyncFileWriter{
		file:  file,
		buf:   bufio.NewWriterSize(file, bufferSize),
		lines: make(chan []byte, fileQueueSize),
		stop:  make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Write never blocks the caller. logrus reuses p, so it is copied.
func (w *AsyncFileWriter) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)
	select {
	case w.lines <- line:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded on a full queue.
func (w *AsyncFileWriter) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *AsyncFileWriter) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(fileFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case line := <-w.lines:
			w.write(line)
		case <-ticker.C:
			_ = w.buf.Flush()
		case <-w.stop:
			for {
				select {
				case line := <-w.lines:
					w.write(line)
				default:
					_ = w.buf.Flush()
					return
				}
			}
		}
	}
}

func (w *AsyncFileWriter) write(line []byte) {
	if _, err := w.buf.Write(line); err != nil {
		fmt.Fprintln(os.Stderr, "log file write failed:", err)
	}
}

// Close drains the queue, flushes and closes the file. Later calls are no-ops.
func (w *AsyncFileWriter) Close() {
	w.once.Do(func() {
		close(w.stop)
		w.wg.Wait()
		_ = w.file.Close()
	})
}
