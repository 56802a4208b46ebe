// internal/app/store/messages/messagestore.go
package messagestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested message does not exist.
var ErrNotFound = errors.New("contact message not found")

// ErrBadStatus is returned for a status outside the allowed set.
var ErrBadStatus = errors.New(`status must be "pending"|"read"|"archived"`)

// PersistenceError reports that the backing store rejected a write for a
// reason other than the legacy-schema mismatch. The store's message is
// carried for the API response.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// inserter is the single write primitive Create needs. *mongo.Collection
// satisfies it; tests substitute a fake to drive the schema-mismatch path.
type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// Store provides access to the contact_messages collection.
type Store struct {
	c   *mongo.Collection
	ins inserter
	log *zap.Logger
}

// New creates a new contact message store.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	c := db.Collection("contact_messages")
	return &Store{c: c, ins: c, log: logger}
}

// SubmitInput is a contact-form submission. InquiryType and PreferredDate
// are optional; Create fills the defaults.
type SubmitInput struct {
	Name          string
	Email         string
	Phone         string
	Message       string
	InquiryType   string
	PreferredDate *string
}

// Write-error kinds, classified from the driver's structured error codes.
// Deployments whose collection validator predates the inquiry_type /
// preferred_date fields reject the full document with
// DocumentValidationFailure; everything else is a plain persistence failure.
type writeErrKind int

const (
	writeErrOther writeErrKind = iota
	writeErrSchemaMismatch
)

const codeDocumentValidationFailure = 121

func classifyWriteErr(err error) writeErrKind {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == codeDocumentValidationFailure {
				return writeErrSchemaMismatch
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == codeDocumentValidationFailure {
		return writeErrSchemaMismatch
	}
	return writeErrOther
}

// Create inserts a contact message with Status "pending" and InquiryType
// defaulted to "general".
//
// If the full-shape insert is rejected with the schema-mismatch kind, Create
// retries exactly once with only the universally-present fields. The returned
// message still carries the intended status/inquiry_type/preferred_date, but
// on the retry path those values are NOT persisted; the degraded write is
// logged so it is observable. Any other write failure surfaces as a
// *PersistenceError with no second attempt.
func (s *Store) Create(ctx context.Context, in SubmitInput) (models.ContactMessage, error) {
	inquiry := in.InquiryType
	if inquiry == "" {
		inquiry = models.DefaultInquiryType
	}

	msg := models.ContactMessage{
		ID:            primitive.NewObjectID(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Message:       in.Message,
		InquiryType:   inquiry,
		PreferredDate: in.PreferredDate,
		Status:        models.MessageStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := s.ins.InsertOne(ctx, msg)
	if err == nil {
		return msg, nil
	}
	if classifyWriteErr(err) != writeErrSchemaMismatch {
		return models.ContactMessage{}, &PersistenceError{Op: "insert contact message", Err: err}
	}

	reduced := bson.M{
		"_id":        msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"phone":      msg.Phone,
		"message":    msg.Message,
		"created_at": msg.CreatedAt,
	}
	if _, err := s.ins.InsertOne(ctx, reduced); err != nil {
		return models.ContactMessage{}, &PersistenceError{Op: "insert contact message (reduced)", Err: err}
	}

	s.log.Warn("contact message stored in legacy shape; status/inquiry_type/preferred_date not persisted",
		zap.String("id", msg.ID.Hex()))
	return msg, nil
}

// rawContactMessage carries both the current and the legacy field variants
// as they exist on disk. It is resolved to the canonical shape exactly once,
// here at the data boundary; nothing outside this package sees legacy fields.
type rawContactMessage struct {
	ID      primitive.ObjectID `bson:"_id"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email"`
	Phone   string             `bson:"phone,omitempty"`
	Message string             `bson:"message"`

	InquiryType  string `bson:"inquiry_type,omitempty"`
	LegacySource string `bson:"source,omitempty"`

	PreferredDate       *string `bson:"preferred_date,omitempty"`
	LegacyPreferredDate *string `bson:"preferredDate,omitempty"`

	Status    string    `bson:"status,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r rawContactMessage) resolve() models.ContactMessage {
	status := r.Status
	if status == "" {
		status = models.MessageStatusPending
	}

	inquiry := r.InquiryType
	if inquiry == "" {
		inquiry = r.LegacySource
	}
	if inquiry == "" {
		inquiry = models.DefaultInquiryType
	}

	preferred := r.PreferredDate
	if preferred == nil {
		preferred = r.LegacyPreferredDate
	}

	return models.ContactMessage{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Message:       r.Message,
		InquiryType:   inquiry,
		PreferredDate: preferred,
		Status:        status,
		CreatedAt:     r.CreatedAt,
	}
}

// ListRecent returns the newest messages first, up to limit, fully
// normalized. An empty result is an empty slice, never nil.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []rawContactMessage
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	out := make([]models.ContactMessage, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.resolve())
	}
	return out, nil
}

// UpdateStatus sets a message's status from the admin surface.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidMessageStatus(status) {
		return ErrBadStatus
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return &PersistenceError{Op: "update contact message status", Err: err}
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
