// internal/app/store/analytics/analyticsstore.go
package analyticsstore

import (
	"context"
	"time"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages page-view events. Events are append-only.
type Store struct {
	c *mongo.Collection
}

// New creates a new analytics Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("analytics_events")}
}

// EnsureIndexes creates the indexes the windowed summary and the dashboard's
// recent-events listing rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_analytics_created"),
		},
		{
			Keys:    bson.D{{Key: "page_path", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_analytics_path"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Record appends one page-view event.
func (s *Store) Record(ctx context.Context, event models.AnalyticsEvent) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// ListSince returns all events with created_at >= from, newest first.
func (s *Store) ListSince(ctx context.Context, from time.Time) ([]models.AnalyticsEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"created_at": bson.M{"$gte": from}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.AnalyticsEvent, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the newest events, up to limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.AnalyticsEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.AnalyticsEvent, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PathSummary is the per-path aggregate over the queried window.
type PathSummary struct {
	Path string `json:"path"`
	// Views counts events for this path within the window.
	Views int `json:"views"`
	// FirstSeen is the earliest created_at within the window, not the true
	// global first sighting of the path.
	FirstSeen time.Time `json:"first_seen"`
}

// SummaryResult is the aggregate payload for a trailing window.
type SummaryResult struct {
	TotalRecords int                     `json:"total_records"`
	Summary      []PathSummary           `json:"summary"`
	RawData      []models.AnalyticsEvent `json:"raw_data"`
}

// Summary fetches the trailing windowDays of events and aggregates them.
func (s *Store) Summary(ctx context.Context, windowDays int) (SummaryResult, error) {
	from := time.Now().UTC().AddDate(0, 0, -windowDays)
	events, err := s.ListSince(ctx, from)
	if err != nil {
		return SummaryResult{}, err
	}
	return Summarize(events), nil
}

// Summarize groups events by page path in a single linear pass. Entries
// appear in order of first appearance in the input (which Summary hands over
// newest-first); no secondary sort is applied.
func Summarize(events []models.AnalyticsEvent) SummaryResult {
	byPath := make(map[string]int, len(events))
	summary := make([]PathSummary, 0)

	for _, ev := range events {
		idx, seen := byPath[ev.PagePath]
		if !seen {
			byPath[ev.PagePath] = len(summary)
			summary = append(summary, PathSummary{
				Path:      ev.PagePath,
				Views:     1,
				FirstSeen: ev.CreatedAt,
			})
			continue
		}
		summary[idx].Views++
		if ev.CreatedAt.Before(summary[idx].FirstSeen) {
			summary[idx].FirstSeen = ev.CreatedAt
		}
	}

	return SummaryResult{
		TotalRecords: len(events),
		Summary:      summary,
		RawData:      events,
	}
}
