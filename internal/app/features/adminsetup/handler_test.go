package adminsetup_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	adminsetupfeature "github.com/haventinyhomes/havenhub/internal/app/features/adminsetup"
	"github.com/haventinyhomes/havenhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestServeCreateAdmin_NotFoundWhenUnconfigured(t *testing.T) {
	h := &adminsetupfeature.Handler{Log: zap.NewNop()}

	r := testutil.NewRequest(http.MethodPost, "/api/admin/create-admin")
	w := httptest.NewRecorder()

	h.ServeCreateAdmin(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestServeCreateAdmin_CreatesAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := adminsetupfeature.NewHandler(db, "owner@example.com", "hunter2secret", zap.NewNop())

	r := testutil.NewRequest(http.MethodPost, "/api/admin/create-admin")
	w := httptest.NewRecorder()

	h.ServeCreateAdmin(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", w.Code, http.StatusCreated, testutil.Body(t, w))
	}

	var resp struct {
		Success bool   `json:"success"`
		UserID  string `json:"user_id"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.UserID == "" {
		t.Errorf("response: got %+v, want success with a user id", resp)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	var stored struct {
		Email        string `bson:"email"`
		PasswordHash string `bson:"password_hash"`
	}
	if err := db.Collection("admin_users").FindOne(ctx, bson.M{"_id": resp.UserID}).Decode(&stored); err != nil {
		t.Fatalf("find stored admin: %v", err)
	}
	// The password must be stored hashed, never in the clear.
	if stored.PasswordHash == "hunter2secret" {
		t.Error("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2secret")) != nil {
		t.Error("stored hash does not verify against the configured password")
	}
}

func TestServeCreateAdmin_ConflictWhenAdminExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := adminsetupfeature.NewHandler(db, "owner@example.com", "hunter2secret", zap.NewNop())

	// Ensure the unique index exists so the second insert is rejected.
	if err := h.Admins.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	fx.CreateAdmin(ctx, "owner@example.com")

	r := testutil.NewRequest(http.MethodPost, "/api/admin/create-admin")
	w := httptest.NewRecorder()

	h.ServeCreateAdmin(w, r)

	if w.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d (body: %s)", w.Code, http.StatusConflict, testutil.Body(t, w))
	}
}
