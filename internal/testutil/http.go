// internal/testutil/http.go
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
}

// AdminUser returns a TestUser suitable for signed-in admin requests. The
// caller is responsible for inserting a matching admin_users row when the
// handler checks membership.
func AdminUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Admin",
		Email: "admin@test.com",
	}
}

// VisitorUser returns a signed-in user with no admin membership.
func VisitorUser() TestUser {
	return TestUser{
		ID:    uuid.NewString(),
		Name:  "Test Visitor",
		Email: "visitor@test.com",
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the user
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request carrying a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewFormRequest creates an HTTP request carrying form-encoded values.
func NewFormRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// Body reads the recorded response body as a string.
func Body(t interface{ Fatalf(string, ...any) }, w *httptest.ResponseRecorder) string {
	b, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(b)
}
