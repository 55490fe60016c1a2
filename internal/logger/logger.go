package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// LogFilePath is where Open writes when no path is configured, relative to the working directory.
const LogFilePath = "logs/uidemo.log"

// New returns a logger writing to w at level, with short timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Open returns a logger that writes to stderr and appends to the file at path,
// creating its directory. An empty path uses LogFilePath. Close the returned
// closer when done.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		path = LogFilePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return New(io.MultiWriter(os.Stderr, f), level), f, nil
}

// ParseLevel maps "debug", "info", "warn", "error" to a level. Unknown names give InfoLevel and an error.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logger: %w", err)
	}
	return level, nil
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger attached to ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
