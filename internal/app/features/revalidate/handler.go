// internal/app/features/revalidate/handler.go
package revalidate

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Handler receives cache invalidation requests. The endpoint only
// acknowledges; this service keeps no render cache of its own.
type Handler struct {
	Secret string
	Log    *zap.Logger
}

func NewHandler(secret string, logger *zap.Logger) *Handler {
	return &Handler{Secret: secret, Log: logger}
}

type revalidateRequest struct {
	Path string `json:"path"`
}

type revalidateResponse struct {
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeRevalidate handles POST /api/revalidate.
func (h *Handler) ServeRevalidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if h.Secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.Secret)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "invalid token"})
		return
	}

	var req revalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "path is required"})
		return
	}

	h.Log.Info("revalidation acknowledged", zap.String("path", req.Path))

	_ = json.NewEncoder(w).Encode(revalidateResponse{
		Message:   "revalidation triggered",
		Path:      req.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
