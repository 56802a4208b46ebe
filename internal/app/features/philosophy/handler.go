// internal/app/features/philosophy/handler.go
package philosophy

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
}

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// ServePhilosophy renders the build-philosophy page. Static content; only
// the settings snapshot comes from the database.
func (h *Handler) ServePhilosophy(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Our Philosophy"),
	}

	templates.Render(w, r, "philosophy", data)
}
