// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateContactMessage inserts a contact message in the current shape.
func (f *Fixtures) CreateContactMessage(ctx context.Context, name, email string) models.ContactMessage {
	f.t.Helper()

	msg := models.ContactMessage{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Email:       email,
		Message:     "I would like to know more about your homes.",
		InquiryType: models.DefaultInquiryType,
		Status:      models.MessageStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("contact_messages").InsertOne(ctx, msg); err != nil {
		f.t.Fatalf("insert contact message: %v", err)
	}
	return msg
}

// CreateLegacyContactMessage inserts a raw document using the old field
// names (source, preferredDate) so stores can be tested against rows
// written before the schema rename.
func (f *Fixtures) CreateLegacyContactMessage(ctx context.Context, name, email, source string) primitive.ObjectID {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":        id,
		"name":       name,
		"email":      email,
		"message":    "Legacy-era message body.",
		"source":     source,
		"created_at": time.Now().UTC(),
	}
	if _, err := f.db.Collection("contact_messages").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert legacy contact message: %v", err)
	}
	return id
}

// CreateHouseModel inserts a house model listing.
func (f *Fixtures) CreateHouseModel(ctx context.Context, name string, visible bool) models.HouseModel {
	f.t.Helper()

	m := models.HouseModel{
		ID:         primitive.NewObjectID(),
		Slug:       text.Fold(name),
		Name:       name,
		BasePrice:  89000,
		SquareFeet: 320,
		Visible:    visible,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("house_models").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("insert house model: %v", err)
	}
	return m
}

// CreateTestimonial inserts a testimonial.
func (f *Fixtures) CreateTestimonial(ctx context.Context, author, quote string) models.Testimonial {
	f.t.Helper()

	tm := models.Testimonial{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Quote:     quote,
		Rating:    5,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("testimonials").InsertOne(ctx, tm); err != nil {
		f.t.Fatalf("insert testimonial: %v", err)
	}
	return tm
}

// CreatePortfolioProject inserts a completed build.
func (f *Fixtures) CreatePortfolioProject(ctx context.Context, title string, completedAt time.Time) models.PortfolioProject {
	f.t.Helper()

	p := models.PortfolioProject{
		ID:          primitive.NewObjectID(),
		Title:       title,
		CompletedAt: completedAt,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("portfolio_projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("insert portfolio project: %v", err)
	}
	return p
}

// CreateAnalyticsEvent inserts a page view event with the given timestamp.
func (f *Fixtures) CreateAnalyticsEvent(ctx context.Context, path string, at time.Time) models.AnalyticsEvent {
	f.t.Helper()

	e := models.AnalyticsEvent{
		ID:        primitive.NewObjectID(),
		PagePath:  path,
		SessionID: uuid.NewString(),
		CreatedAt: at,
	}
	if _, err := f.db.Collection("analytics_events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("insert analytics event: %v", err)
	}
	return e
}

// CreateAdmin inserts an admin membership row and returns it.
func (f *Fixtures) CreateAdmin(ctx context.Context, email string) models.AdminUser {
	f.t.Helper()

	u := models.AdminUser{
		ID:        uuid.NewString(),
		Email:     email,
		EmailCI:   text.Fold(email),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("admin_users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("insert admin user: %v", err)
	}
	return u
}
