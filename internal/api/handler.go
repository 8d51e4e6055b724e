package api

import (
	"context"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"

	"salon-assistant-backend/internal/assistant"
	"salon-assistant-backend/internal/model"
	"salon-assistant-backend/internal/store"
)

// sessionTTL bounds how long an idle conversation is kept before its state
// is dropped and the next message starts a fresh one.
const sessionTTL = 30 * time.Minute

// BookingService is the slice of the booking coordinator the API exposes.
type BookingService interface {
	ListAvailable(ctx context.Context, date string) ([]string, error)
	Book(ctx context.Context, name, date, rawTime, service string) (*model.Booking, error)
}

// Assistant drives the conversational endpoint.
type Assistant interface {
	Converse(ctx context.Context, sess *assistant.Session, input string) (string, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	bookings BookingService
	chat     Assistant
	webpush  *webpush.Options
	notify   func(bookingID int64)
	sessions *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, bookings BookingService, chat Assistant, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		bookings: bookings,
		chat:     chat,
		webpush:  webpushOptions,
		sessions: cache.New(sessionTTL, 10*time.Minute),
	}
}

// SetNotify registers a hook invoked after every booking created over HTTP.
func (h *Handler) SetNotify(fn func(bookingID int64)) {
	h.notify = fn
}

// session returns the conversation for an ID, creating one when the ID is
// empty, unknown, or idle past the TTL. Each hit refreshes the idle window.
func (h *Handler) session(id string) *assistant.Session {
	if id != "" {
		if v, ok := h.sessions.Get(id); ok {
			sess := v.(*assistant.Session)
			h.sessions.SetDefault(id, sess)
			return sess
		}
	}
	sess := assistant.NewSession()
	h.sessions.SetDefault(sess.ID, sess)
	return sess
}
