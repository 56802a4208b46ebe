package revalidate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	revalidatefeature "github.com/haventinyhomes/havenhub/internal/app/features/revalidate"
	"github.com/haventinyhomes/havenhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRevalidate_RejectsBadToken(t *testing.T) {
	h := revalidatefeature.NewHandler("correct-secret", zap.NewNop())

	r := testutil.NewJSONRequest(http.MethodPost, "/api/revalidate", `{"path":"/"}`)
	r.Header.Set("Authorization", "Bearer wrong-secret")
	w := httptest.NewRecorder()

	h.ServeRevalidate(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestServeRevalidate_RejectsWhenNoSecretConfigured(t *testing.T) {
	h := revalidatefeature.NewHandler("", zap.NewNop())

	r := testutil.NewJSONRequest(http.MethodPost, "/api/revalidate", `{"path":"/"}`)
	r.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()

	h.ServeRevalidate(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestServeRevalidate_RejectsMissingPath(t *testing.T) {
	h := revalidatefeature.NewHandler("correct-secret", zap.NewNop())

	r := testutil.NewJSONRequest(http.MethodPost, "/api/revalidate", `{}`)
	r.Header.Set("Authorization", "Bearer correct-secret")
	w := httptest.NewRecorder()

	h.ServeRevalidate(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestServeRevalidate_Acknowledges(t *testing.T) {
	h := revalidatefeature.NewHandler("correct-secret", zap.NewNop())

	r := testutil.NewJSONRequest(http.MethodPost, "/api/revalidate", `{"path":"/models"}`)
	r.Header.Set("Authorization", "Bearer correct-secret")
	w := httptest.NewRecorder()

	h.ServeRevalidate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Message   string `json:"message"`
		Path      string `json:"path"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Path != "/models" {
		t.Errorf("path: got %q, want %q", resp.Path, "/models")
	}
	if resp.Message == "" || resp.Timestamp == "" {
		t.Error("expected message and timestamp to be set")
	}
}
