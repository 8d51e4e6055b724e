package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewIntentClassifier()

	tests := []struct {
		input string
		want  Intent
	}{
		{"I want to book a haircut", IntentBooking},
		{"Can I get a facial appointment?", IntentBooking},
		{"BOOK AN APPOINTMENT please", IntentBooking},
		{"hi, I need an appointment tomorrow", IntentBooking},
		{"make a booking for me", IntentBooking},
		{"what are your opening hours?", IntentChat},
		{"how much is a haircut?", IntentChat},
		{"where are you located", IntentChat},
		{"", IntentChat},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, c.Classify(tc.input), "input %q", tc.input)
	}
}
