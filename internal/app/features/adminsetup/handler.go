// internal/app/features/adminsetup/handler.go
package adminsetup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	adminstore "github.com/haventinyhomes/havenhub/internal/app/store/admins"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler creates the first admin account from bootstrap configuration.
// When no bootstrap credentials are configured the endpoint plays dead
// with a 404 so it reveals nothing in production.
type Handler struct {
	Admins         *adminstore.Store
	BootstrapEmail string
	BootstrapPass  string
	Log            *zap.Logger
}

func NewHandler(db *mongo.Database, bootstrapEmail, bootstrapPass string, logger *zap.Logger) *Handler {
	return &Handler{
		Admins:         adminstore.New(db),
		BootstrapEmail: bootstrapEmail,
		BootstrapPass:  bootstrapPass,
		Log:            logger,
	}
}

type createResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeCreateAdmin handles POST /api/admin/create-admin.
func (h *Handler) ServeCreateAdmin(w http.ResponseWriter, r *http.Request) {
	if h.BootstrapEmail == "" || h.BootstrapPass == "" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	hash, err := bcrypt.GenerateFromPassword([]byte(h.BootstrapPass), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("bootstrap password hash failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to create admin"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Admins.Create(ctx, models.AdminUser{
		ID:           uuid.NewString(),
		Email:        h.BootstrapEmail,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, adminstore.ErrDuplicateAdmin) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "admin already exists"})
			return
		}
		h.Log.Error("bootstrap admin create failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "failed to create admin"})
		return
	}

	h.Log.Info("bootstrap admin created",
		zap.String("user_id", created.ID),
		zap.String("email", created.Email))

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createResponse{
		Success: true,
		UserID:  created.ID,
		Email:   created.Email,
	})
}
