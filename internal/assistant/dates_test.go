package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDate(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"2025-09-01", "2025-09-01"},
		{"june 20", "2025-06-20"},
		{"June 15", "2025-06-15"},
		{"20 june", "2025-06-20"},
		{"25th december", "2025-12-25"},
		{"dec 25", "2025-12-25"},
		{"March 25", "2026-03-25"}, // already behind us this year
		{"3rd jan", "2026-01-03"},
		{"  july 1  ", "2025-07-01"},
	}
	for _, tc := range tests {
		got, err := resolveDate(tc.input, today)
		assert.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestResolveDateUsesLocalCalendarDay(t *testing.T) {
	// Midday east of UTC. The UTC clock still reads the previous epoch day's
	// hours, so a same-day date must not roll over to next year.
	aest := time.FixedZone("AEST", 10*3600)
	today := time.Date(2025, 3, 25, 12, 0, 0, 0, aest)

	got, err := resolveDate("march 25", today)
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-25", got)

	got, err = resolveDate("march 26", today)
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-26", got)

	// Yesterday still means next year.
	got, err = resolveDate("march 24", today)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-24", got)
}

func TestResolveDateRejectsGarbage(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "   ", "sometime soon", "March 35", "tomorrowish"} {
		_, err := resolveDate(input, today)
		assert.Error(t, err, "input %q", input)
	}
}
