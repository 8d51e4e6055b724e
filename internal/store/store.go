package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salon-assistant-backend/internal/model"
)

// ErrUnavailable marks a failure to reach or read the backing store. Callers
// use errors.Is to tell "store is down" apart from business-rule failures.
var ErrUnavailable = errors.New("booking store unavailable")

// Store defines the interface for all database operations.
//
// AppendBooking is the only mutation on booking rows; the coordinator never
// updates or deletes them. The store offers no check-then-append atomicity:
// a ListBookings snapshot can be stale by the time AppendBooking runs.
type Store interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	AppendBooking(ctx context.Context, b *model.Booking) error
	ListSnippets(ctx context.Context) ([]model.KnowledgeSnippet, error)
	ReplaceSnippets(ctx context.Context, snippets []model.KnowledgeSnippet) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for handlers that manage subscriptions.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// ListBookings returns every booking row. The read either fully succeeds or
// fully fails; there is no partial result.
func (s *gormStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.db.WithContext(ctx).Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("%w: list bookings: %v", ErrUnavailable, err)
	}
	return bookings, nil
}

// AppendBooking adds exactly one row at the end of the bookings table.
func (s *gormStore) AppendBooking(ctx context.Context, b *model.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("%w: append booking %d: %v", ErrUnavailable, b.ID, err)
	}
	return nil
}

// ListSnippets returns all indexed salon knowledge snippets.
func (s *gormStore) ListSnippets(ctx context.Context) ([]model.KnowledgeSnippet, error) {
	var snippets []model.KnowledgeSnippet
	if err := s.db.WithContext(ctx).Order("id").Find(&snippets).Error; err != nil {
		return nil, fmt.Errorf("%w: list snippets: %v", ErrUnavailable, err)
	}
	return snippets, nil
}

// ReplaceSnippets swaps the stored salon knowledge for a fresh scrape result.
func (s *gormStore) ReplaceSnippets(ctx context.Context, snippets []model.KnowledgeSnippet) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.KnowledgeSnippet{}).Error; err != nil {
			return err
		}
		if len(snippets) == 0 {
			return nil
		}
		return tx.Create(&snippets).Error
	})
	if err != nil {
		return fmt.Errorf("%w: replace snippets: %v", ErrUnavailable, err)
	}
	return nil
}
