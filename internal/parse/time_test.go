package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{
			name:     "Canonical passthrough",
			raw:      "14:30",
			expected: "14:30",
		},
		{
			name:     "Single-digit hour gets padded",
			raw:      "9:00",
			expected: "09:00",
		},
		{
			name:     "Compact 24-hour form",
			raw:      "1600",
			expected: "16:00",
		},
		{
			name:     "Afternoon meridiem",
			raw:      "4 PM",
			expected: "16:00",
		},
		{
			name:     "Morning meridiem lowercase",
			raw:      "10am",
			expected: "10:00",
		},
		{
			name:     "Noon",
			raw:      "12 PM",
			expected: "12:00",
		},
		{
			name:     "Midnight",
			raw:      "12 AM",
			expected: "00:00",
		},
		{
			name:     "Surrounding whitespace",
			raw:      "  3 pm ",
			expected: "15:00",
		},
		{
			name:      "Meridiem with minutes is rejected",
			raw:       "2:30 PM",
			expectErr: true,
		},
		{
			name:      "Hour out of range",
			raw:       "25:00",
			expectErr: true,
		},
		{
			name:      "Minute out of range",
			raw:       "10:75",
			expectErr: true,
		},
		{
			name:      "Meridiem hour out of range",
			raw:       "13 PM",
			expectErr: true,
		},
		{
			name:      "Free text",
			raw:       "not a time",
			expectErr: true,
		},
		{
			name:      "Empty input",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTime(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnparseableTime)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

// Every catalog slot must survive normalization unchanged, otherwise a spoken
// confirmation could book a time the availability check never offered.
func TestNormalizeTimeRoundTripsCatalogForm(t *testing.T) {
	for _, slot := range []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"} {
		got, err := NormalizeTime(slot)
		assert.NoError(t, err)
		assert.Equal(t, slot, got)
	}
}
