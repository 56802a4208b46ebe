// internal/app/features/housemodels/handler.go
package housemodels

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/haventinyhomes/havenhub/internal/app/features/errors"
	housemodelstore "github.com/haventinyhomes/havenhub/internal/app/store/housemodels"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Models []models.HouseModel
}

type Handler struct {
	DB     *mongo.Database
	Models *housemodelstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Models: housemodelstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeList renders the public models page: visible listings in their
// explicit display order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	listings, err := h.Models.ListVisible(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load house models", err, "A database error occurred.", "/")
		return
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Our Models"),
		Models: listings,
	}

	templates.Render(w, r, "models", data)
}
