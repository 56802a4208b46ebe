// internal/app/features/analyticsapi/handler.go
package analyticsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	analyticsstore "github.com/haventinyhomes/havenhub/internal/app/store/analytics"
	"github.com/haventinyhomes/havenhub/internal/app/system/htmlsanitize"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const sessionCookieName = "hh_session"

type Handler struct {
	Events      *analyticsstore.Store
	DefaultDays int
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, defaultDays int, logger *zap.Logger) *Handler {
	if defaultDays <= 0 {
		defaultDays = 7
	}
	return &Handler{
		Events:      analyticsstore.New(db),
		DefaultDays: defaultDays,
		Log:         logger,
	}
}

type recordRequest struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
	SessionID string `json:"sessionId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeRecord handles POST /api/analytics. A tracking miss should never
// break the page that reported it, so insert failures are logged at warn
// and reported to the caller without any retry.
func (h *Handler) ServeRecord(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
		return
	}

	req.Path = strings.TrimSpace(htmlsanitize.Text(req.Path))
	if req.Path == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "path is required"})
		return
	}

	// Body values win; the cookie and User-Agent header are fallbacks for
	// beacons that do not carry their own.
	sessionID := strings.TrimSpace(htmlsanitize.Text(req.SessionID))
	if sessionID == "" {
		sessionID = h.sessionID(w, r)
	}
	userAgent := strings.TrimSpace(htmlsanitize.Text(req.UserAgent))
	if userAgent == "" {
		userAgent = r.UserAgent()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event := models.AnalyticsEvent{
		PagePath:  req.Path,
		Referrer:  htmlsanitize.Text(req.Referrer),
		UserAgent: userAgent,
		SessionID: sessionID,
	}
	if err := h.Events.Record(ctx, event); err != nil {
		h.Log.Warn("analytics event not recorded",
			zap.String("path", req.Path),
			zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to record event"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// ServeSummary handles GET /api/analytics?days=N.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days := h.DefaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	result, err := h.Events.Summary(ctx, days)
	if err != nil {
		h.Log.Error("analytics summary failed", zap.Int("days", days), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to load analytics"})
		return
	}

	_ = json.NewEncoder(w).Encode(result)
}

// sessionID returns the visitor's session id, minting a cookie when the
// request carries none.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
