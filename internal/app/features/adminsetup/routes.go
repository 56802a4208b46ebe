// internal/app/features/adminsetup/routes.go
package adminsetup

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreateAdmin)
	return r
}
