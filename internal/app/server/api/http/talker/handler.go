package talker

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/fault"
	"talkerbase/internal/domain/talker"
)

type Handler struct {
	service    talker.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	// gated carries the token gate on top of the regular chain; only the
	// delete operation uses it, because its pipeline is the gate alone.
	gated huma.Middlewares
}

func NewHandler(service talker.Servicer, log *slog.Logger, mws, gated huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
		gated:      gated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{
		Body: h.service.List(ctx),
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	t, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, fault.ToStatusError(err)
	}

	return &findOutput{Body: t}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	p := input.Body.payload(input.Authorization)
	if err := talker.ValidateWrite(p); err != nil {
		return nil, fault.ToStatusError(err)
	}

	created, err := h.service.Create(ctx, p.Name, p.AgeValue(), talker.Talk{
		WatchedAt: p.Talk.WatchedAt,
		Rate:      p.RateValue(),
	})
	if err != nil {
		return nil, fault.ToStatusError(err)
	}

	return &createOutput{Body: created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	p := input.Body.payload(input.Authorization)
	if err := talker.ValidateWrite(p); err != nil {
		return nil, fault.ToStatusError(err)
	}

	updated, err := h.service.Update(ctx, input.ID, p.Name, p.AgeValue(), talker.Talk{
		WatchedAt: p.Talk.WatchedAt,
		Rate:      p.RateValue(),
	})
	if err != nil {
		return nil, fault.ToStatusError(err)
	}

	return &updateOutput{Body: updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, fault.ToStatusError(err)
	}

	return &deleteOutput{}, nil
}
