// internal/domain/models/adminuser.go
package models

import "time"

// AdminUser is a membership record gating the admin surface. The _id is the
// authentication provider's user identifier (a string, not an ObjectID);
// presence of a row is the sole authorization check.
type AdminUser struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	EmailCI      string    `bson:"email_ci" json:"-"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
