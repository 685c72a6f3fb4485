package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.rootOp(), h.root)
}

// root answers the liveness probe with a bare 200.
func (h *Handler) root(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("root probe request received")

	return &Output{}, nil
}
