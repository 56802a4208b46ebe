// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sm, Log: logger}
}

// ServeLogout clears the session and sends the visitor home.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
