// internal/app/features/contact/routes.go
package contact

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/haventinyhomes/havenhub/internal/app/features/contact/views"
)

// Routes serves the contact page.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	return r
}

// APIRoutes serves the JSON intake endpoint, mounted under /api.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeSubmit)
	return r
}
