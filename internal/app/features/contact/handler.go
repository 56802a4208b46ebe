// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	messagestore "github.com/haventinyhomes/havenhub/internal/app/store/messages"
	"github.com/haventinyhomes/havenhub/internal/app/system/htmlsanitize"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
}

type Handler struct {
	DB       *mongo.Database
	Messages *messagestore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Messages: messagestore.New(db, logger),
		Log:      logger,
	}
}

// ServePage renders the contact form page.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Contact Us"),
	}
	templates.Render(w, r, "contact", data)
}

// submitRequest is the POST /api/contact body.
type submitRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Message       string  `json:"message"`
	InquiryType   string  `json:"inquiry_type"`
	PreferredDate *string `json:"preferred_date"`
}

type submitResponse struct {
	Success bool                  `json:"success"`
	Data    models.ContactMessage `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeSubmit handles POST /api/contact.
//
// 201 {success, data} on a stored lead; 400 for a malformed or incomplete
// body; 500 with the store's message when the insert is rejected. The
// schema-tolerant retry happens inside the store and is invisible here.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(htmlsanitize.Text(req.Name))
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(htmlsanitize.Text(req.Message))
	req.InquiryType = strings.TrimSpace(htmlsanitize.Text(req.InquiryType))

	if req.Name == "" || req.Email == "" || req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "name, email, and message are required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg, err := h.Messages.Create(ctx, messagestore.SubmitInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		InquiryType:   req.InquiryType,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		h.Log.Error("contact submit failed", zap.Error(err))

		var pe *messagestore.PersistenceError
		msgText := "failed to save message"
		if errors.As(err, &pe) {
			msgText = pe.Error()
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msgText})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(submitResponse{Success: true, Data: msg})
}
