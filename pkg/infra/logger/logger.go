package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logsDir           = "logs"
	fileBufferSize    = 32 * 1024
	consoleBufferSize = 4096
)

// Closer flushes the async writers behind a logger.
type Closer func()

// NewLogger builds the process logger: JSON lines to logs/{component}.log
// through an async buffered writer, mirrored to stdout by a console hook.
func NewLogger(component string) (*logrus.Logger, Closer, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))

	if component == "" {
		component = "api"
	}
	logFile := filepath.Clean(filepath.Join(logsDir, component+".log"))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		return nil, nil, fmt.Errorf("invalid log file path %q: must be in %s directory", logFile, logsDir)
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(fileWriter)

	consoleHook := NewAsyncConsoleHook(consoleBufferSize)
	logger.AddHook(consoleHook)

	return logger, func() {
		consoleHook.Close()
		fileWriter.Close()
	}, nil
}

func levelFromEnv(value string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
