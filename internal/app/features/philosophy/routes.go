// internal/app/features/philosophy/routes.go
package philosophy

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/haventinyhomes/havenhub/internal/app/features/philosophy/views"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePhilosophy)
	return r
}
