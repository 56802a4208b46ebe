// internal/domain/models/portfolioproject.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PortfolioProject is a completed build shown on the portfolio page.
type PortfolioProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	CompletedAt time.Time          `bson:"completed_at" json:"completed_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
