package settingsstore_test

import (
	"testing"

	settingsstore "github.com/haventinyhomes/havenhub/internal/app/store/settings"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"github.com/haventinyhomes/havenhub/internal/testutil"
)

func TestStore_Get_DefaultsWhenEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName: got %q, want %q", got.SiteName, models.DefaultSiteName)
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := models.SiteSettings{
		SiteName:     "Haven Tiny Homes",
		Tagline:      "Small homes, big living",
		ContactEmail: "hello@example.com",
		ContactPhone: "555-0100",
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Tagline != want.Tagline {
		t.Errorf("Tagline: got %q, want %q", got.Tagline, want.Tagline)
	}
	if got.ContactEmail != want.ContactEmail {
		t.Errorf("ContactEmail: got %q, want %q", got.ContactEmail, want.ContactEmail)
	}
	if got.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set after save")
	}
}

func TestStore_Save_OverwritesSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.SiteSettings{SiteName: "First Name"}
	second := models.SiteSettings{SiteName: "Second Name"}

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	count, err := db.Collection("site_settings").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("document count: got %d, want 1", count)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.SiteName != "Second Name" {
		t.Errorf("SiteName: got %q, want %q", got.SiteName, "Second Name")
	}
}
