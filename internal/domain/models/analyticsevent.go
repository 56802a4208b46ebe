// internal/domain/models/analyticsevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsEvent is one recorded page view. Events are append-only; nothing
// in this system updates or deletes them.
type AnalyticsEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PagePath  string             `bson:"page_path" json:"page_path"`
	Referrer  string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	SessionID string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
