package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"talkerbase/internal/config"
)

// New builds the process logger for the given environment: local gets a
// pretty colored handler at debug level, dev structured JSON at debug,
// anything else (prod) structured JSON at info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
