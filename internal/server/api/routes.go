package api

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 60 * time.Second

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	admin := s.authenticate(models.RoleAdmin)
	anyone := s.authenticate(models.RoleAdmin, models.RoleExternalSystem)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user/auth", func(r chi.Router) {
			r.Post("/login", s.login)
			r.With(admin).Post("/credentials/change", s.changePassword)
			r.With(admin).Put("/logout", s.logout)
		})

		r.Route("/classification", func(r chi.Router) {
			r.With(anyone).Post("/", s.classify)
			r.With(admin).Get("/logs", s.listClassifications)
			r.With(admin).Get("/logs/{id}", s.getClassification)
		})

		r.Route("/system/external", func(r chi.Router) {
			r.Post("/auth", s.authenticateSystem)
			r.With(anyone).Put("/logout", s.logout)
			r.With(admin).Get("/", s.listSystems)
			r.With(admin).Post("/", s.registerSystem)
			r.With(admin).Delete("/{name}", s.deleteSystem)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
