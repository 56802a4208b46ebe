package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	contactfeature "github.com/haventinyhomes/havenhub/internal/app/features/contact"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"github.com/haventinyhomes/havenhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestServeSubmit_RejectsMalformedBody(t *testing.T) {
	h := &contactfeature.Handler{Log: zap.NewNop()}

	r := testutil.NewJSONRequest(http.MethodPost, "/api/contact", `{not json`)
	w := httptest.NewRecorder()

	h.ServeSubmit(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestServeSubmit_RejectsMissingFields(t *testing.T) {
	h := &contactfeature.Handler{Log: zap.NewNop()}

	cases := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"a@b.com","message":"hi"}`},
		{"no email", `{"name":"Dana","message":"hi"}`},
		{"no message", `{"name":"Dana","email":"a@b.com"}`},
		{"whitespace only", `{"name":"  ","email":"a@b.com","message":"hi"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testutil.NewJSONRequest(http.MethodPost, "/api/contact", tc.body)
			w := httptest.NewRecorder()

			h.ServeSubmit(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestServeSubmit_StoresMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := contactfeature.NewHandler(db, zap.NewNop())

	body := `{"name":"Dana Smith","email":"dana@example.com","message":"Do you deliver?","inquiry_type":"quote"}`
	r := testutil.NewJSONRequest(http.MethodPost, "/api/contact", body)
	w := httptest.NewRecorder()

	h.ServeSubmit(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", w.Code, http.StatusCreated, testutil.Body(t, w))
	}

	var resp struct {
		Success bool                  `json:"success"`
		Data    models.ContactMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Data.InquiryType != "quote" {
		t.Errorf("InquiryType: got %q, want %q", resp.Data.InquiryType, "quote")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	count, err := db.Collection("contact_messages").CountDocuments(ctx, bson.M{"email": "dana@example.com"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("stored message count: got %d, want 1", count)
	}
}

func TestServeSubmit_StripsMarkup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := contactfeature.NewHandler(db, zap.NewNop())

	body := `{"name":"<script>alert(1)</script>Dana","email":"dana@example.com","message":"<b>hello</b> there"}`
	r := testutil.NewJSONRequest(http.MethodPost, "/api/contact", body)
	w := httptest.NewRecorder()

	h.ServeSubmit(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusCreated)
	}

	var resp struct {
		Data models.ContactMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Name != "Dana" {
		t.Errorf("Name: got %q, want markup stripped", resp.Data.Name)
	}
	if resp.Data.Message != "hello there" {
		t.Errorf("Message: got %q, want markup stripped", resp.Data.Message)
	}
}
