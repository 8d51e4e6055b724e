package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"salon-assistant-backend/internal/model"
	"salon-assistant-backend/internal/parse"
	"salon-assistant-backend/internal/store"
)

const dateLayout = "2006-01-02"

// Coordinator enforces validation, availability, and commit ordering for
// booking attempts. It holds no cache of the store: every availability check
// re-reads, because the backing table can be mutated by other sessions or by
// staff editing it directly.
type Coordinator struct {
	store store.Store
	now   func() time.Time
}

// NewCoordinator creates a coordinator on top of the given store.
func NewCoordinator(s store.Store) *Coordinator {
	return &Coordinator{
		store: s,
		now:   time.Now,
	}
}

// ListAvailable returns the open slots for a date in catalog order.
func (c *Coordinator) ListAvailable(ctx context.Context, date string) ([]string, error) {
	date, err := validDate(date)
	if err != nil {
		return nil, err
	}

	records, err := c.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(date, records), nil
}

// Book runs one booking attempt end to end: validate the fields, normalize
// the requested time, check it against current availability, append the row,
// then verify the commit for a lost race. On success the returned record is
// the confirmation.
func (c *Coordinator) Book(ctx context.Context, name, date, rawTime, service string) (*model.Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	service = strings.TrimSpace(service)
	if service == "" {
		return nil, &InvalidInputError{Field: "service", Reason: "must not be empty"}
	}
	date, err := validDate(date)
	if err != nil {
		return nil, err
	}

	slot, err := parse.NormalizeTime(rawTime)
	if err != nil {
		return nil, &InvalidTimeFormatError{Raw: rawTime, Err: err}
	}

	records, err := c.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	open := AvailableSlots(date, records)
	if !containsSlot(open, slot) {
		return nil, &SlotUnavailableError{Date: date, Time: slot, Available: open}
	}

	record := &model.Booking{
		ID:           c.now().UnixNano(),
		CustomerName: name,
		Date:         date,
		Time:         slot,
		Service:      service,
		Status:       model.StatusConfirmed,
	}

	if err := c.store.AppendBooking(ctx, record); err != nil {
		return nil, err
	}

	// The read-check-append above is not atomic against the backing store;
	// another session may have claimed the slot inside the window.
	if err := c.verifyCommit(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// verifyCommit re-reads the store after an append and checks whether a rival
// Confirmed record claimed the same slot. The smallest booking ID wins; if
// the just-written record lost, the race is surfaced as a SlotConflictError
// instead of being silently kept as a double booking.
func (c *Coordinator) verifyCommit(ctx context.Context, record *model.Booking) error {
	records, err := c.store.ListBookings(ctx)
	if err != nil {
		// The append already committed; a failed verification read must not
		// look like a failed booking, or the caller would retry and double
		// book. Conflict detection is best effort.
		log.Printf("Warning: could not verify booking %d after append: %v", record.ID, err)
		return nil
	}

	winner := record.ID
	for _, r := range records {
		if r.Date == record.Date && r.Time == record.Time &&
			r.Status == model.StatusConfirmed && r.ID < winner {
			winner = r.ID
		}
	}

	if winner != record.ID {
		return &SlotConflictError{
			Date:     record.Date,
			Time:     record.Time,
			WinnerID: winner,
			LoserID:  record.ID,
		}
	}
	return nil
}

func validDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", &InvalidInputError{Field: "date", Reason: "must be a YYYY-MM-DD calendar date"}
	}
	return date, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
