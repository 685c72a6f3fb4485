package talker

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "talkers-list",
		Method:      http.MethodGet,
		Path:        "/talker",
		Summary:     "Listar pessoas palestrantes",
		Description: "Retorna a coleção inteira; um array vazio quando o armazenamento falha.",
		Tags:        []string{"talkers"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "talkers-find",
		Method:      http.MethodGet,
		Path:        "/talker/{id}",
		Summary:     "Buscar pessoa palestrante por ID",
		Tags:        []string{"talkers"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "talkers-create",
		Method:        http.MethodPost,
		Path:          "/talker",
		Summary:       "Cadastrar pessoa palestrante",
		Tags:          []string{"talkers"},
		Security:      []map[string][]string{{"token": {}}},
		DefaultStatus: http.StatusCreated,
		// The pipeline alone judges the body, so its messages and their
		// order stay canonical.
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "talkers-update",
		Method:      http.MethodPut,
		Path:        "/talker/{id}",
		Summary:     "Atualizar pessoa palestrante",
		Tags:             []string{"talkers"},
		Security:         []map[string][]string{{"token": {}}},
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "talkers-delete",
		Method:        http.MethodDelete,
		Path:          "/talker/{id}",
		Summary:       "Remover pessoa palestrante",
		Tags:          []string{"talkers"},
		Security:      []map[string][]string{{"token": {}}},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.gated,
	}
}
