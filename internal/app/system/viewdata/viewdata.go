// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"net/http"

	settingsstore "github.com/haventinyhomes/havenhub/internal/app/store/settings"
	"github.com/haventinyhomes/havenhub/internal/app/system/authz"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseVM contains common fields for all view models: the site-settings
// snapshot plus user and page context. It is built once per request, passed
// by value into render data, and never mutated afterward. There is no
// ambient settings global.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings snapshot (from database)
	SiteName     string
	Tagline      string
	ContactEmail string
	ContactPhone string
	Address      string
	InstagramURL string
	FacebookURL  string
	YouTubeURL   string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string

	// Page context
	Title       string
	CurrentPath string
}

// NewBaseVM creates a fully populated BaseVM for a page.
// Pass db=nil if you don't need site settings (defaults are used).
func NewBaseVM(r *http.Request, db *mongo.Database, title string) BaseVM {
	_, name, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		IsLoggedIn:  signedIn,
		UserName:    name,
		Title:       title,
		CurrentPath: r.URL.Path,
	}

	if db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		settings, err := settingsstore.New(db).Get(ctx)
		if err == nil {
			vm.applySettings(settings)
		}
	}

	return vm
}

func (vm *BaseVM) applySettings(s models.SiteSettings) {
	vm.SiteName = s.SiteName
	vm.Tagline = s.Tagline
	vm.ContactEmail = s.ContactEmail
	vm.ContactPhone = s.ContactPhone
	vm.Address = s.Address
	vm.InstagramURL = s.InstagramURL
	vm.FacebookURL = s.FacebookURL
	vm.YouTubeURL = s.YouTubeURL
}
