package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/adminboard/account-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type IdentityHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DirectoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Identity  IdentityHandler
	Directory DirectoryHandler
	Report    ReportHandler

	AuthMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Identity == nil {
		return nil, fmt.Errorf("nil Identity handler")
	}
	if deps.Directory == nil {
		return nil, fmt.Errorf("nil Directory handler")
	}
	if deps.Report == nil {
		return nil, fmt.Errorf("nil Report handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.HTTPLogger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Post("/signup", deps.Identity.Signup)
	r.Post("/login", deps.Identity.Login)
	r.With(deps.AuthMW).Get("/me", deps.Identity.Me)

	r.Get("/users", deps.Directory.List)
	r.Put("/users/{id}", deps.Directory.Update)
	r.Delete("/users/{id}", deps.Directory.Delete)

	r.Get("/reports", deps.Report.Generate)

	return r, nil
}
