// Endpoint surface:
//
//	GET    /            # liveness probe (public)
//	GET    /talker      # list talkers (public)
//	GET    /talker/{id} # find talker (public)
//	POST   /login       # issue a token (public)
//	POST   /talker      # create talker (token)
//	PUT    /talker/{id} # update talker (token)
//	DELETE /talker/{id} # delete talker (token)
package api

import (
	healthAPI "talkerbase/internal/app/server/api/http/health"
	loginAPI "talkerbase/internal/app/server/api/http/login"
	"talkerbase/internal/app/server/api/http/middleware"
	authMW "talkerbase/internal/app/server/api/http/middleware/auth"
	loggerMW "talkerbase/internal/app/server/api/http/middleware/logger"
	talkerAPI "talkerbase/internal/app/server/api/http/talker"
	"talkerbase/internal/domain/auth"
	"talkerbase/internal/domain/talker"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// errorMessage is the uniform error body: {"message": "..."}. It replaces
// huma's problem-detail model for the whole API.
type errorMessage struct {
	status  int
	Message string `json:"message" doc:"Descrição do erro"`
}

func (e *errorMessage) Error() string {
	return e.Message
}

func (e *errorMessage) GetStatus() int {
	return e.status
}

func (e *errorMessage) ContentType(string) string {
	return "application/json"
}

func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &errorMessage{status: status, Message: message}
	}
}

type Handlers struct {
	Health *healthAPI.Handler
	Login  *loginAPI.Handler
	Talker *talkerAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(repo talker.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Talkerbase API", "1.0.0")
	// The default schema-link transformer injects a $schema field into every
	// object body; record and error payloads are fixed shapes.
	config.Transformers = nil
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"token": {Type: "apiKey", In: "header", Name: "Authorization"},
	}

	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Login.SetupRoutes(API)
	h.Talker.SetupRoutes(API)

	return mux
}

func handlers(repo talker.Repository, log *slog.Logger) *Handlers {
	gateMW := authMW.New(log)
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	authService := auth.NewService(log)
	middlewares.Add(logMW.Middleware())
	loginHandler := loginAPI.NewHandler(authService, log, middlewares.GetAllAndClear())

	talkerService := talker.NewService(repo, log)
	middlewares.Add(logMW.Middleware())
	regular := middlewares.GetAllAndClear()

	middlewares.Add(gateMW.Middleware())
	middlewares.Add(logMW.Middleware())
	gated := middlewares.GetAllAndClear()

	talkerHandler := talkerAPI.NewHandler(talkerService, log, regular, gated)

	return &Handlers{
		Health: healthHandler,
		Login:  loginHandler,
		Talker: talkerHandler,
	}
}
