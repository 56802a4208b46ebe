// internal/app/features/admin/messages.go
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	messagestore "github.com/haventinyhomes/havenhub/internal/app/store/messages"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeUpdateMessageStatus handles POST /admin/messages/{id}/status.
// Accepts form posts from the dashboard; status comes from the form body.
func (h *Handler) ServeUpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireAdminAPI(w, r)
	if !ok {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid message id"})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return
	}
	status := r.PostFormValue("status")
	if !models.IsValidMessageStatus(status) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown status"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Messages.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, messagestore.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "message not found"})
			return
		}
		h.Log.Error("message status update failed",
			zap.String("message_id", id.Hex()),
			zap.String("user_id", userID),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to update message"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
