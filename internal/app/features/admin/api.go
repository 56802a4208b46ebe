// internal/app/features/admin/api.go
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/haventinyhomes/havenhub/internal/app/system/authz"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requireAdminAPI is the JSON twin of requireAdmin: 401 when nobody is
// signed in, 403 when the user is not on the admin allowlist.
func (h *Handler) requireAdminAPI(w http.ResponseWriter, r *http.Request) (userID string, ok bool) {
	userID, _, ok = authz.UserCtx(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	isAdmin, err := h.Admins.Exists(ctx, userID)
	if err != nil {
		h.Log.Error("admin lookup failed", zap.String("user_id", userID), zap.Error(err))
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return "", false
	}
	if !isAdmin {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return "", false
	}
	return userID, true
}

// ServeDashboardJSON handles GET /api/admin/dashboard.
func (h *Handler) ServeDashboardJSON(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdminAPI(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.loadDashboard(r.Context()))
}
