package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type config struct {
	logger     *slog.Logger
	ignorePath map[string]struct{}
}

type LoggerOption func(*config)

// WithIgnorePath silences logging for the given request paths, typically the
// liveness probe hit every few seconds by the orchestrator.
func WithIgnorePath(paths []string) LoggerOption {
	return func(c *config) {
		for _, path := range paths {
			c.ignorePath[path] = struct{}{}
		}
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// NewLogging logs one line per handled request, levelled by response status.
func NewLogging(logger *slog.Logger, options ...LoggerOption) gin.HandlerFunc {
	l := &config{
		logger:     logger,
		ignorePath: map[string]struct{}{},
	}
	for _, option := range options {
		option(l)
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := l.ignorePath[path]; ok {
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("data_length", dataLength),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		if route := c.FullPath(); route != "" {
			attributes = append(attributes, slog.String("route", route))
		}
		if query := c.Request.URL.RawQuery; query != "" {
			attributes = append(attributes, slog.String("query", query))
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), levelForStatus(status),
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
