package voice

import (
	"context"
	"errors"
	"io"
)

// ErrSilence signals that the caller stayed silent past the listening window
// or produced no audio at all. It is distinct from an unintelligible
// utterance, which yields CouldNotUnderstand: silence ends the conversation
// loop, an apology lets it re-prompt.
var ErrSilence = errors.New("no speech detected")

// CouldNotUnderstand is returned as the transcript when audio was captured
// but produced no usable recognition result.
const CouldNotUnderstand = "Sorry, I couldn't understand that."

// Recognizer converts one utterance of audio into lowercase text.
type Recognizer interface {
	Recognize(ctx context.Context, audio io.Reader) (string, error)
}

// Speaker voices a reply to the caller. Fire and forget: the assistant never
// consumes anything beyond the error.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
