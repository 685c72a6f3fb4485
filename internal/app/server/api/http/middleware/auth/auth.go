// Package auth is the HTTP side of the token gate: a middleware for
// operations whose whole precondition is the token shape. Create and update
// do not use it; their token checks run inside the validation pipeline so
// the canonical rule order is preserved.
package auth

import (
	"encoding/json"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/auth"
	"talkerbase/internal/domain/fault"
)

type Gate struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Gate {
	return &Gate{
		log: log.With("component", "token_gate"),
	}
}

// Middleware rejects requests whose Authorization header is absent or not
// exactly 16 characters. The token is never matched against issued state.
func (g *Gate) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		err := auth.ValidateToken(ctx.Header("Authorization"))
		if err == nil {
			next(ctx)
			return
		}

		var fe *fault.Error
		if !errors.As(err, &fe) {
			fe = fault.ErrInternal
		}

		g.log.Debug("request blocked by token gate",
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.URL().Path),
		)

		ctx.SetStatus(fe.HTTPStatus())
		ctx.SetHeader("Content-Type", "application/json")
		if encErr := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
			"message": fe.Message,
		}); encErr != nil {
			g.log.Error("failed to write gate response", "error", encErr)
		}
	}
}
