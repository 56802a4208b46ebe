// internal/app/features/testimonials/handler.go
package testimonials

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/haventinyhomes/havenhub/internal/app/features/errors"
	testimonialstore "github.com/haventinyhomes/havenhub/internal/app/store/testimonials"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Testimonials []models.Testimonial
}

type Handler struct {
	DB           *mongo.Database
	Testimonials *testimonialstore.Store
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Testimonials: testimonialstore.New(db),
		ErrLog:       errLog,
		Log:          logger,
	}
}

// ServeList renders customer testimonials, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	quotes, err := h.Testimonials.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load testimonials", err, "A database error occurred.", "/")
		return
	}

	data := pageData{
		BaseVM:       viewdata.NewBaseVM(r, h.DB, "Testimonials"),
		Testimonials: quotes,
	}

	templates.Render(w, r, "testimonials", data)
}
