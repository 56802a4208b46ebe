// internal/app/store/portfolio/portfoliostore.go
package portfoliostore

import (
	"context"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides read access to the portfolio_projects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new portfolio store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("portfolio_projects")}
}

// List returns all completed projects, most recently completed first.
func (s *Store) List(ctx context.Context) ([]models.PortfolioProject, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.PortfolioProject, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
