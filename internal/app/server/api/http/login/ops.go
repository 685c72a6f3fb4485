package login

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Emitir token de acesso",
		Description: "Valida email e senha e emite um token aleatório de 16 caracteres. Nada é persistido.",
		Tags: []string{"login"},
		// The credential validators alone judge the body.
		SkipValidateBody: true,
		Middlewares:      h.middleware,
	}
}
