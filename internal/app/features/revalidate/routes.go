// internal/app/features/revalidate/routes.go
package revalidate

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeRevalidate)
	return r
}
