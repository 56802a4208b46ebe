// internal/app/features/admin/settings.go
package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	settingsstore "github.com/haventinyhomes/havenhub/internal/app/store/settings"
	"github.com/haventinyhomes/havenhub/internal/app/system/htmlsanitize"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.uber.org/zap"
)

// publicPaths are the pages whose rendered output depends on site settings.
// They are re-validated downstream after every settings save.
var publicPaths = []string{"/", "/models", "/portfolio", "/testimonials", "/philosophy"}

type settingsData struct {
	viewdata.BaseVM
	Settings models.SiteSettings
	Saved    bool
}

// ServeSettings renders the site settings form.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := settingsstore.New(h.DB)
	current, err := store.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "settings load failed", err,
			"Could not load site settings.", "/admin")
		return
	}

	data := settingsData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Site Settings"),
		Settings: current,
		Saved:    r.URL.Query().Get("saved") == "1",
	}
	templates.Render(w, r, "admin_settings", data)
}

// ServeSaveSettings handles POST /admin/settings. On success it kicks off
// the downstream cache notification and redirects back to the form.
func (h *Handler) ServeSaveSettings(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	field := func(name string) string {
		return strings.TrimSpace(htmlsanitize.Text(r.PostFormValue(name)))
	}

	settings := models.SiteSettings{
		SiteName:     field("site_name"),
		Tagline:      field("tagline"),
		ContactEmail: field("contact_email"),
		ContactPhone: field("contact_phone"),
		Address:      field("address"),
		InstagramURL: field("instagram_url"),
		FacebookURL:  field("facebook_url"),
		YouTubeURL:   field("youtube_url"),
	}
	if settings.SiteName == "" {
		settings.SiteName = models.DefaultSiteName
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := settingsstore.New(h.DB).Save(ctx, settings); err != nil {
		h.ErrLog.LogServerError(w, r, "settings save failed", err,
			"Could not save site settings.", "/admin/settings")
		return
	}

	h.Log.Info("site settings updated", zap.String("user_id", userID))
	h.Notifier.ContentChanged(publicPaths)

	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}
