// internal/app/features/housemodels/routes.go
package housemodels

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/haventinyhomes/havenhub/internal/app/features/housemodels/views"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
