// internal/app/store/housemodels/modelstore.go
package housemodelstore

import (
	"context"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides read access to the house_models collection. Listings are
// authored out of band; this app never writes them.
type Store struct {
	c *mongo.Collection
}

// New creates a new house model store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("house_models")}
}

// Explicit display order ascending, creation time descending as tie-break.
var listingOrder = bson.D{
	{Key: "display_order", Value: 1},
	{Key: "created_at", Value: -1},
}

// ListVisible returns the listings shown on the public models page.
func (s *Store) ListVisible(ctx context.Context) ([]models.HouseModel, error) {
	return s.list(ctx, bson.M{"visible": true})
}

// List returns all listings, including hidden ones, for the admin dashboard.
func (s *Store) List(ctx context.Context) ([]models.HouseModel, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.HouseModel, error) {
	opts := options.Find().SetSort(listingOrder)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.HouseModel, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
