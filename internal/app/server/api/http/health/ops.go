package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) rootOp() huma.Operation {
	return huma.Operation{
		OperationID:   "root",
		Method:        http.MethodGet,
		Path:          "/",
		Summary:       "Liveness probe",
		Description:   "Returns 200 with an empty body.",
		Tags:          []string{"health"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
