package login

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	adminstore "github.com/haventinyhomes/havenhub/internal/app/store/admins"
	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"github.com/haventinyhomes/havenhub/internal/testutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSafeReturn(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/admin", "/admin"},
		{"/admin/settings", "/admin/settings"},
		{"https://evil.example.com/phish", ""},
		{"//evil.example.com", ""},
		{"relative/path", ""},
	}
	for _, tc := range cases {
		if got := safeReturn(tc.in); got != tc.want {
			t.Errorf("safeReturn(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestServeSubmit_SignsInWithValidCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := adminstore.New(db).Create(ctx, models.AdminUser{
		ID:           "user-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	sm, err := auth.NewSessionManager("test-session-key-0123456789", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	h := NewHandler(db, sm, zap.NewNop())

	form := url.Values{
		"email":    {"owner@example.com"},
		"password": {"hunter2secret"},
		"return":   {"/admin"},
	}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.ServeSubmit(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect: got %q, want %q", loc, "/admin")
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestServeSubmit_RejectsWrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The error path re-renders the login page, so the engine must be up.
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		t.Fatalf("boot template engine: %v", err)
	}
	templates.UseEngine(eng, zap.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := adminstore.New(db).Create(ctx, models.AdminUser{
		ID:           "user-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	sm, err := auth.NewSessionManager("test-session-key-0123456789", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	h := NewHandler(db, sm, zap.NewNop())

	form := url.Values{
		"email":    {"owner@example.com"},
		"password": {"wrong-password"},
	}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.ServeSubmit(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password.") {
		t.Error("expected the generic credential error in the response body")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("no session cookie should be set on a failed login")
	}
}
