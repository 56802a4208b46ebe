// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/haventinyhomes/havenhub/internal/app/features/admin/views"
	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
)

// Routes mounts the HTML back-office under /admin. Session loading is
// applied by the caller; everything here requires a signed-in user, and
// admin membership is checked per handler.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// The whole back-office requires a signed-in user.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeDashboard)
		pr.Get("/settings", h.ServeSettings)
		pr.Post("/settings", h.ServeSaveSettings)
		pr.Post("/messages/{id}/status", h.ServeUpdateMessageStatus)
	})

	return r
}
