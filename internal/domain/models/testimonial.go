// internal/domain/models/testimonial.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a customer quote shown on the testimonials page.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Author    string             `bson:"author" json:"author"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Quote     string             `bson:"quote" json:"quote"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
