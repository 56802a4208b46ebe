// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
)

// ErrDuplicateAdmin is returned when the admin row already exists.
var ErrDuplicateAdmin = errors.New("admin user already exists")

// Store provides access to the admin_users collection. A row's presence is
// the sole authorization check for the admin surface.
type Store struct {
	c *mongo.Collection
}

// New creates a new admin membership store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_users")}
}

// EnsureIndexes creates the unique index on the folded email so duplicate
// admin rows are rejected by the database, not application code.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email_ci", Value: 1}},
		Options: options.Index().
			SetName("idx_admin_email_ci").
			SetUnique(true),
	})
	return err
}

// Exists reports whether the given auth-provider user id is a registered
// admin. A lookup error is returned as-is; callers treat it as "not admin".
func (s *Store) Exists(ctx context.Context, userID string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByEmail looks up an admin by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new admin membership row.
func (s *Store) Create(ctx context.Context, u models.AdminUser) (models.AdminUser, error) {
	u.EmailCI = text.Fold(u.Email)
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.AdminUser{}, ErrDuplicateAdmin
		}
		return models.AdminUser{}, err
	}
	return u, nil
}
