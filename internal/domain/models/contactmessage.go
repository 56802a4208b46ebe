// internal/domain/models/contactmessage.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message statuses.
const (
	MessageStatusPending  = "pending"
	MessageStatusRead     = "read"
	MessageStatusArchived = "archived"
)

// DefaultInquiryType is used when a submission does not say what it is about.
const DefaultInquiryType = "general"

// ContactMessage is a lead submitted through the public contact form.
//
// This is the canonical, fully-normalized shape: Status and InquiryType are
// always non-empty. Rows written before the inquiry_type/preferred_date
// fields existed are resolved to this shape at the store boundary (see
// store/messages); they are never rewritten in place.
type ContactMessage struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message       string             `bson:"message" json:"message"`
	InquiryType   string             `bson:"inquiry_type,omitempty" json:"inquiry_type"`
	PreferredDate *string            `bson:"preferred_date,omitempty" json:"preferred_date"`
	Status        string             `bson:"status,omitempty" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// IsValidMessageStatus reports whether s is a status the admin surface may set.
func IsValidMessageStatus(s string) bool {
	switch s {
	case MessageStatusPending, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}
