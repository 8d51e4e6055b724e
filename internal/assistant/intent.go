package assistant

import "strings"

// Intent is the coarse routing decision for one utterance.
type Intent string

const (
	// IntentBooking starts or continues the appointment dialog.
	IntentBooking Intent = "booking"

	// IntentChat routes to knowledge retrieval plus the chat model.
	IntentChat Intent = "chat"
)

// IntentClassifier detects booking intent in free text. Keyword matching is
// deliberate: the phrases customers use to start a booking are a small,
// stable set, and a misrouted utterance only costs one clarifying turn.
type IntentClassifier struct {
	bookingPhrases []string
}

// NewIntentClassifier creates a classifier with the default phrase set.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		bookingPhrases: []string{
			"book an appointment",
			"schedule an appointment",
			"i need an appointment",
			"i want to book",
			"i need a haircut",
			"can i get a facial appointment",
			"i want to schedule",
			"i want a service",
			"schedule my booking",
			"make a booking",
			"make an appointment",
		},
	}
}

// Classify returns the intent for one utterance.
func (c *IntentClassifier) Classify(input string) Intent {
	lower := strings.ToLower(input)
	for _, phrase := range c.bookingPhrases {
		if strings.Contains(lower, phrase) {
			return IntentBooking
		}
	}
	return IntentChat
}
