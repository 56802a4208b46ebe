// internal/app/store/testimonials/testimonialstore.go
package testimonialstore

import (
	"context"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides read access to the testimonials collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new testimonial store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("testimonials")}
}

// List returns all testimonials, newest first.
func (s *Store) List(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Testimonial, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
