package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/model"
	"salon-assistant-backend/internal/store"
)

// Exercises the coordinator against the real gorm store end to end.
func TestBookingLifecycle(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Booking{}))

	s := store.NewGormStore(db)
	coord := booking.NewCoordinator(s)
	ctx := context.Background()
	const date = "2025-09-01"

	// A fresh day offers the whole catalog.
	open, err := coord.ListAvailable(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, booking.AllSlots(), open)

	// Minutes with a meridiem are not a spoken-hour form.
	_, err = coord.Book(ctx, "Alice", date, "2:30 PM", "Haircut")
	var badTime *booking.InvalidTimeFormatError
	require.True(t, errors.As(err, &badTime))

	record, err := coord.Book(ctx, "Alice", date, "3 PM", "Haircut")
	require.NoError(t, err)
	assert.Equal(t, "15:00", record.Time)
	assert.Equal(t, model.StatusConfirmed, record.Status)
	assert.NotZero(t, record.ID)

	open, err = coord.ListAvailable(ctx, date)
	require.NoError(t, err)
	assert.NotContains(t, open, "15:00")
	assert.Len(t, open, len(booking.AllSlots())-1)

	// The same slot cannot be booked twice.
	_, err = coord.Book(ctx, "Bob", date, "15:00", "Facial")
	var unavailable *booking.SlotUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, open, unavailable.Available)

	// Another day is unaffected.
	other, err := coord.ListAvailable(ctx, "2025-09-02")
	require.NoError(t, err)
	assert.Equal(t, booking.AllSlots(), other)

	// The booked row reads back in sheet order.
	rows, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].CustomerName)
	assert.Equal(t, "Haircut", rows[0].Service)
	assert.WithinDuration(t, time.Now(), rows[0].CreatedAt, 5*time.Second)
}
