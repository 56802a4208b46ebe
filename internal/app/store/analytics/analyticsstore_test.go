package analyticsstore_test

import (
	"testing"
	"time"

	analyticsstore "github.com/haventinyhomes/havenhub/internal/app/store/analytics"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"github.com/haventinyhomes/havenhub/internal/testutil"
)

func TestSummarize_GroupsByPath(t *testing.T) {
	now := time.Now().UTC()
	events := []models.AnalyticsEvent{
		{PagePath: "/models", CreatedAt: now},
		{PagePath: "/", CreatedAt: now.Add(-1 * time.Hour)},
		{PagePath: "/models", CreatedAt: now.Add(-2 * time.Hour)},
		{PagePath: "/contact", CreatedAt: now.Add(-3 * time.Hour)},
	}

	result := analyticsstore.Summarize(events)

	if result.TotalRecords != 4 {
		t.Errorf("TotalRecords: got %d, want 4", result.TotalRecords)
	}
	if len(result.Summary) != 3 {
		t.Fatalf("Summary length: got %d, want 3", len(result.Summary))
	}

	// Paths keep first-appearance order from the newest-first input.
	wantOrder := []string{"/models", "/", "/contact"}
	for i, want := range wantOrder {
		if result.Summary[i].Path != want {
			t.Errorf("Summary[%d].Path: got %q, want %q", i, result.Summary[i].Path, want)
		}
	}

	if result.Summary[0].Views != 2 {
		t.Errorf("views for /models: got %d, want 2", result.Summary[0].Views)
	}
	// FirstSeen is the earliest event for the path within the window.
	if !result.Summary[0].FirstSeen.Equal(now.Add(-2 * time.Hour)) {
		t.Errorf("FirstSeen for /models: got %v, want %v", result.Summary[0].FirstSeen, now.Add(-2*time.Hour))
	}
}

func TestSummarize_Empty(t *testing.T) {
	result := analyticsstore.Summarize(nil)

	if result.TotalRecords != 0 {
		t.Errorf("TotalRecords: got %d, want 0", result.TotalRecords)
	}
	if result.Summary == nil {
		t.Error("Summary should be an empty slice, not nil")
	}
	if len(result.Summary) != 0 {
		t.Errorf("Summary length: got %d, want 0", len(result.Summary))
	}
}

func TestStore_Record(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analyticsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Record(ctx, models.AnalyticsEvent{
		PagePath:  "/models",
		Referrer:  "https://example.com",
		SessionID: "abc123",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	events, err := store.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("event count: got %d, want 1", len(events))
	}
	if events[0].PagePath != "/models" {
		t.Errorf("PagePath: got %q, want %q", events[0].PagePath, "/models")
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Summary_WindowExcludesOldEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analyticsstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	fx.CreateAnalyticsEvent(ctx, "/", now.Add(-1*time.Hour))
	fx.CreateAnalyticsEvent(ctx, "/", now.Add(-2*time.Hour))
	fx.CreateAnalyticsEvent(ctx, "/models", now.Add(-3*time.Hour))
	// Outside a 7 day window.
	fx.CreateAnalyticsEvent(ctx, "/old", now.AddDate(0, 0, -8))

	result, err := store.Summary(ctx, 7)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if result.TotalRecords != 3 {
		t.Errorf("TotalRecords: got %d, want 3", result.TotalRecords)
	}
	for _, s := range result.Summary {
		if s.Path == "/old" {
			t.Error("event outside the window should not be summarized")
		}
		if s.Path == "/" && s.Views != 2 {
			t.Errorf("views for /: got %d, want 2", s.Views)
		}
	}
}

func TestStore_Summary_TwoRecordsSamePath(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := analyticsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := store.Record(ctx, models.AnalyticsEvent{PagePath: "/contact"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	result, err := store.Summary(ctx, 7)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(result.Summary) != 1 {
		t.Fatalf("Summary length: got %d, want 1", len(result.Summary))
	}
	if result.Summary[0].Views != 2 {
		t.Errorf("views: got %d, want 2", result.Summary[0].Views)
	}
}
