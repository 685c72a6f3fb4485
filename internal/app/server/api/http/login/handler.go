package login

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/auth"
	"talkerbase/internal/domain/fault"
)

type Handler struct {
	service    auth.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service auth.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	var creds auth.Credentials
	if input.Body != nil {
		creds = auth.Credentials{
			Email:    input.Body.Email,
			Password: input.Body.Password,
		}
	}

	token, err := h.service.Login(ctx, creds)
	if err != nil {
		return nil, fault.ToStatusError(err)
	}

	return &loginOutput{
		Body: tokenResponse{Token: token},
	}, nil
}
