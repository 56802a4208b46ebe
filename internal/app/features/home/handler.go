// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	housemodelstore "github.com/haventinyhomes/havenhub/internal/app/store/housemodels"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	FeaturedModels []models.HouseModel
}

type Handler struct {
	DB     *mongo.Database
	Models *housemodelstore.Store
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Models: housemodelstore.New(db),
		Log:    logger,
	}
}

// ServeRoot renders the landing page. A failed listing query degrades to an
// empty featured section rather than an error page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	featured, err := h.Models.ListVisible(ctx)
	if err != nil {
		h.Log.Warn("home: failed to load featured models", zap.Error(err))
		featured = []models.HouseModel{}
	}
	if len(featured) > 3 {
		featured = featured[:3]
	}

	data := pageData{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, "Haven Tiny Homes"),
		FeaturedModels: featured,
	}

	templates.Render(w, r, "home", data)
}
