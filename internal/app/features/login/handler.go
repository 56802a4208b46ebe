// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	adminstore "github.com/haventinyhomes/havenhub/internal/app/store/admins"
	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	DB         *mongo.Database
	Admins     *adminstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Admins:     adminstore.New(db),
		SessionMgr: sm,
		Log:        logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	ReturnTo string
	Error    string
}

// ServeForm renders the sign-in page.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Sign In"),
		ReturnTo: safeReturn(r.URL.Query().Get("return")),
	}
	templates.Render(w, r, "login", data)
}

// ServeSubmit handles the credential post. A bad email and a bad password
// produce the same message so the form does not leak which emails exist.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	returnTo := safeReturn(r.PostFormValue("return"))

	if email == "" || password == "" {
		h.renderError(w, r, returnTo, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Admins.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("login lookup failed", zap.Error(err))
		}
		h.renderError(w, r, returnTo, "Invalid email or password.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		h.renderError(w, r, returnTo, "Invalid email or password.")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, auth.SessionUser{
		ID:    u.ID,
		Name:  u.Email,
		Email: u.Email,
	}); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		h.renderError(w, r, returnTo, "Could not start a session. Please try again.")
		return
	}

	if returnTo == "" {
		returnTo = "/admin"
	}
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, returnTo, msg string) {
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Sign In"),
		ReturnTo: returnTo,
		Error:    msg,
	}
	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "login", data)
}

// safeReturn keeps redirects on-site.
func safeReturn(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || !strings.HasPrefix(u.Path, "/") {
		return ""
	}
	return u.Path
}
