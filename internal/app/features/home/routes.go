// internal/app/features/home/routes.go
package home

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/haventinyhomes/havenhub/internal/app/features/home/views"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	return r
}
