package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/fx"
)

// HTTPLogger writes one access-log line per request.
// Output goes to HTTP_LOG_PATH when set; otherwise lines are dropped.
type HTTPLogger struct {
	mu  sync.Mutex
	out io.Writer
	c   io.Closer
}

// NewHTTPLogger opens the access log and registers it for closing on shutdown.
func NewHTTPLogger(lc fx.Lifecycle, log *slog.Logger) *HTTPLogger {
	h := newHTTPLogger(os.Getenv("HTTP_LOG_PATH"), log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.Close()
		},
	})
	return h
}

func newHTTPLogger(path string, log *slog.Logger) *HTTPLogger {
	if path == "" {
		return &HTTPLogger{out: io.Discard}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("http log directory unavailable, access log disabled",
			slog.String("path", path), Error(err))
		return &HTTPLogger{out: io.Discard}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("failed to open http log, access log disabled",
			slog.String("path", path), Error(err))
		return &HTTPLogger{out: io.Discard}
	}

	return &HTTPLogger{out: f, c: f}
}

// NewHTTPLoggerWriter returns an access logger writing to w. Used by tests.
func NewHTTPLoggerWriter(w io.Writer) *HTTPLogger {
	return &HTTPLogger{out: w}
}

// LogRequest appends a single access-log line.
func (h *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	line := fmt.Sprintf("%s %s %s %s %d %dms %q %s\n",
		time.Now().UTC().Format(time.RFC3339),
		ip, method, uri, status, latency.Milliseconds(), userAgent, requestID)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.out, line)
}

// Close releases the underlying file, if any.
func (h *HTTPLogger) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.c == nil {
		return nil
	}
	err := h.c.Close()
	h.c = nil
	h.out = io.Discard
	return err
}
