package messagestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// fakeInserter scripts insert outcomes and records every document it was
// given, so tests can assert on attempt counts and document shapes.
type fakeInserter struct {
	errs []error // error for attempt i; nil past the end
	docs []interface{}
}

func (f *fakeInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	attempt := len(f.docs)
	f.docs = append(f.docs, document)
	if attempt < len(f.errs) && f.errs[attempt] != nil {
		return nil, f.errs[attempt]
	}
	return &mongo.InsertOneResult{}, nil
}

func newFakeStore(errs ...error) (*Store, *fakeInserter) {
	ins := &fakeInserter{errs: errs}
	return &Store{ins: ins, log: zap.NewNop()}, ins
}

func validationFailure() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: codeDocumentValidationFailure, Message: "Document failed validation"},
		},
	}
}

func TestCreate_DefaultsOnFirstAttempt(t *testing.T) {
	store, ins := newFakeStore()

	msg, err := store.Create(context.Background(), SubmitInput{
		Name:    "Ada",
		Email:   "a@b.com",
		Phone:   "+1",
		Message: "hi",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(ins.docs) != 1 {
		t.Fatalf("expected exactly 1 insert attempt, got %d", len(ins.docs))
	}
	if msg.Status != models.MessageStatusPending {
		t.Errorf("Status: got %q, want %q", msg.Status, models.MessageStatusPending)
	}
	if msg.InquiryType != models.DefaultInquiryType {
		t.Errorf("InquiryType: got %q, want %q", msg.InquiryType, models.DefaultInquiryType)
	}
	if msg.PreferredDate != nil {
		t.Errorf("PreferredDate: got %v, want nil", *msg.PreferredDate)
	}
	if msg.ID.IsZero() {
		t.Error("expected ID to be generated")
	}
}

func TestCreate_KeepsCallerInquiryType(t *testing.T) {
	store, _ := newFakeStore()

	msg, err := store.Create(context.Background(), SubmitInput{
		Name:        "Ada",
		Email:       "a@b.com",
		Message:     "hi",
		InquiryType: "tour",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if msg.InquiryType != "tour" {
		t.Errorf("InquiryType: got %q, want %q", msg.InquiryType, "tour")
	}
}

func TestCreate_SchemaMismatchRetriesOnceReduced(t *testing.T) {
	store, ins := newFakeStore(validationFailure())

	date := "2026-10-01"
	msg, err := store.Create(context.Background(), SubmitInput{
		Name:          "Ada",
		Email:         "a@b.com",
		Phone:         "+1",
		Message:       "hi",
		InquiryType:   "tour",
		PreferredDate: &date,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(ins.docs) != 2 {
		t.Fatalf("expected exactly 2 insert attempts, got %d", len(ins.docs))
	}

	reduced, ok := ins.docs[1].(bson.M)
	if !ok {
		t.Fatalf("retry document: got %T, want bson.M", ins.docs[1])
	}
	for _, key := range []string{"status", "inquiry_type", "preferred_date"} {
		if _, present := reduced[key]; present {
			t.Errorf("retry document must not contain %q", key)
		}
	}
	for _, key := range []string{"name", "email", "phone", "message", "created_at"} {
		if _, present := reduced[key]; !present {
			t.Errorf("retry document missing %q", key)
		}
	}

	// Intended values still reflected on the returned record.
	if msg.Status != models.MessageStatusPending {
		t.Errorf("Status: got %q, want %q", msg.Status, models.MessageStatusPending)
	}
	if msg.InquiryType != "tour" {
		t.Errorf("InquiryType: got %q, want %q", msg.InquiryType, "tour")
	}
	if msg.PreferredDate == nil || *msg.PreferredDate != date {
		t.Errorf("PreferredDate: got %v, want %q", msg.PreferredDate, date)
	}
}

func TestCreate_OtherErrorNoRetry(t *testing.T) {
	store, ins := newFakeStore(errors.New("connection reset"))

	_, err := store.Create(context.Background(), SubmitInput{
		Name:    "Ada",
		Email:   "a@b.com",
		Message: "hi",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PersistenceError, got %T", err)
	}
	if len(ins.docs) != 1 {
		t.Errorf("expected no retry, got %d attempts", len(ins.docs))
	}
}

func TestCreate_RetryFailureSurfaces(t *testing.T) {
	store, ins := newFakeStore(validationFailure(), errors.New("still broken"))

	_, err := store.Create(context.Background(), SubmitInput{
		Name:    "Ada",
		Email:   "a@b.com",
		Message: "hi",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PersistenceError, got %T", err)
	}
	if len(ins.docs) != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", len(ins.docs))
	}
}

func TestClassifyWriteErr(t *testing.T) {
	if got := classifyWriteErr(validationFailure()); got != writeErrSchemaMismatch {
		t.Errorf("write exception 121: got %v, want schema mismatch", got)
	}
	cmdErr := mongo.CommandError{Code: codeDocumentValidationFailure}
	if got := classifyWriteErr(cmdErr); got != writeErrSchemaMismatch {
		t.Errorf("command error 121: got %v, want schema mismatch", got)
	}
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	if got := classifyWriteErr(dup); got != writeErrOther {
		t.Errorf("duplicate key: got %v, want other", got)
	}
	if got := classifyWriteErr(errors.New("boom")); got != writeErrOther {
		t.Errorf("plain error: got %v, want other", got)
	}
}

func TestResolve_LegacyFields(t *testing.T) {
	date := "2025-03-01"
	raw := rawContactMessage{
		ID:                  primitive.NewObjectID(),
		Name:                "Grace",
		Email:               "g@example.com",
		Message:             "old row",
		LegacySource:        "referral",
		LegacyPreferredDate: &date,
		CreatedAt:           time.Now().UTC(),
	}

	msg := raw.resolve()
	if msg.Status != models.MessageStatusPending {
		t.Errorf("Status: got %q, want pending default", msg.Status)
	}
	if msg.InquiryType != "referral" {
		t.Errorf("InquiryType: got %q, want legacy source value", msg.InquiryType)
	}
	if msg.PreferredDate == nil || *msg.PreferredDate != date {
		t.Errorf("PreferredDate: got %v, want legacy value %q", msg.PreferredDate, date)
	}
}

func TestResolve_CurrentFieldsWin(t *testing.T) {
	current := "2026-01-15"
	legacy := "2024-01-15"
	raw := rawContactMessage{
		ID:                  primitive.NewObjectID(),
		Name:                "Grace",
		Email:               "g@example.com",
		Message:             "mixed row",
		InquiryType:         "build",
		LegacySource:        "referral",
		PreferredDate:       &current,
		LegacyPreferredDate: &legacy,
		Status:              models.MessageStatusRead,
	}

	msg := raw.resolve()
	if msg.InquiryType != "build" {
		t.Errorf("InquiryType: got %q, want current value", msg.InquiryType)
	}
	if msg.PreferredDate == nil || *msg.PreferredDate != current {
		t.Errorf("PreferredDate: got %v, want current value", msg.PreferredDate)
	}
	if msg.Status != models.MessageStatusRead {
		t.Errorf("Status: got %q, want %q", msg.Status, models.MessageStatusRead)
	}
}

func TestResolve_EmptyLegacyRow(t *testing.T) {
	raw := rawContactMessage{
		ID:      primitive.NewObjectID(),
		Name:    "Ada",
		Email:   "a@b.com",
		Message: "bare row",
	}

	msg := raw.resolve()
	if msg.Status != models.MessageStatusPending {
		t.Errorf("Status: got %q, want pending", msg.Status)
	}
	if msg.InquiryType != models.DefaultInquiryType {
		t.Errorf("InquiryType: got %q, want general", msg.InquiryType)
	}
	if msg.PreferredDate != nil {
		t.Errorf("PreferredDate: got %v, want nil", *msg.PreferredDate)
	}
}
