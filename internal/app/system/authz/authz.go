// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
)

// UserCtx returns the current user's provider ID, display name, and a found
// flag. If no user is present in context it returns "", "", false, so
// callers can trust that ok=true means an authenticated session. Whether
// that user is an *admin* is a separate membership check against the
// admin_users collection; a session alone grants nothing.
func UserCtx(r *http.Request) (userID string, name string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return "", "", false
	}
	return user.ID, user.Name, true
}

// IsSignedIn reports whether the request carries an authenticated session.
func IsSignedIn(r *http.Request) bool {
	_, _, ok := UserCtx(r)
	return ok
}
