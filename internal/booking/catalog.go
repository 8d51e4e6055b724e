package booking

import "salon-assistant-backend/internal/model"

// slotCatalog is the fixed set of bookable times for any date: hourly slots
// across business hours. Canonical form is zero-padded "HH:MM".
var slotCatalog = []string{
	"10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

// AllSlots returns the daily slot catalog in ascending order.
func AllSlots() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// AvailableSlots returns the catalog entries not taken by a Confirmed booking
// on the given date, preserving catalog order. It is a pure function over the
// records passed in; callers re-read the store before every call because the
// table can be edited externally between calls.
func AvailableSlots(date string, records []model.Booking) []string {
	taken := make(map[string]bool, len(records))
	for _, r := range records {
		if r.Date == date && r.Status == model.StatusConfirmed {
			taken[r.Time] = true
		}
	}

	out := make([]string, 0, len(slotCatalog))
	for _, slot := range slotCatalog {
		if !taken[slot] {
			out = append(out, slot)
		}
	}
	return out
}
