// internal/app/features/analyticsapi/routes.go
package analyticsapi

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeRecord)
	r.Get("/", h.ServeSummary)
	return r
}
