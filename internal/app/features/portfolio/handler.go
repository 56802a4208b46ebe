// internal/app/features/portfolio/handler.go
package portfolio

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/haventinyhomes/havenhub/internal/app/features/errors"
	portfoliostore "github.com/haventinyhomes/havenhub/internal/app/store/portfolio"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Projects []models.PortfolioProject
}

type Handler struct {
	DB       *mongo.Database
	Projects *portfoliostore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Projects: portfoliostore.New(db),
		ErrLog:   errLog,
		Log:      logger,
	}
}

// ServeList renders completed builds, most recent first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load portfolio projects", err, "A database error occurred.", "/")
		return
	}

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Portfolio"),
		Projects: projects,
	}

	templates.Render(w, r, "portfolio", data)
}
