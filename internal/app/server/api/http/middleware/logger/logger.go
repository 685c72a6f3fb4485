// Package logger provides the request logging middleware.
package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware logs every request after it has been served.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		l.log.Info("HTTP request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", ctx.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", remoteAddr),
		)
	}
}
