package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"salon-assistant-backend/internal/booking"
	"salon-assistant-backend/internal/model"
	"salon-assistant-backend/internal/parse"
	"salon-assistant-backend/internal/store"
	"salon-assistant-backend/internal/voice"
)

const (
	Greeting = "Hello! Welcome to the salon. How can I help you today?"
	Goodbye  = "Goodbye! Have a great day."

	promptName    = "Let's book your appointment. What's your name?"
	promptDate    = "What date would you like? You can say something like March 25."
	promptService = "What service would you like? For example a haircut, facial, or massage."

	replyBadName   = "Sorry, I didn't catch your name. What's your name?"
	replyBadDate   = "Sorry, I didn't understand that date. You can say something like March 25."
	replyNoSlots   = "There are no open slots on that date. Would you like to try another day?"
	replyBadSlot   = "That slot is not available. Please pick one of the open times."
	replySlotTaken = "Sorry, that slot was just taken."
	replyStoreDown = "Sorry, I can't reach the booking book right now. Please try again later."
)

// Searcher answers free-form questions from the knowledge index.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Booker is the slice of the booking coordinator the assistant drives.
type Booker interface {
	ListAvailable(ctx context.Context, date string) ([]string, error)
	Book(ctx context.Context, name, date, rawTime, service string) (*model.Booking, error)
}

// Service turns user utterances into replies, routing between the booking
// dialog and retrieval-backed chat.
type Service struct {
	classifier *IntentClassifier
	searcher   Searcher
	chatter    Chatter
	booker     Booker
	now        func() time.Time
	notify     func(bookingID int64)
}

func NewService(searcher Searcher, chatter Chatter, booker Booker) *Service {
	return &Service{
		classifier: NewIntentClassifier(),
		searcher:   searcher,
		chatter:    chatter,
		booker:     booker,
		now:        time.Now,
	}
}

// SetNotify registers a hook invoked after every confirmed booking.
func (s *Service) SetNotify(fn func(bookingID int64)) {
	s.notify = fn
}

// Converse consumes one user turn and produces the assistant's reply.
// A non-nil error means the conversation cannot continue; the reply is
// still suitable to show or speak to the user.
func (s *Service) Converse(ctx context.Context, sess *Session, input string) (string, error) {
	if sess.stage != stageIdle {
		return s.continueBooking(ctx, sess, input)
	}
	if s.classifier.Classify(input) == IntentBooking {
		sess.stage = stageName
		return promptName, nil
	}
	return s.answer(ctx, input)
}

func (s *Service) answer(ctx context.Context, input string) (string, error) {
	retrieved, err := s.searcher.Search(ctx, input)
	if err != nil {
		log.Printf("assistant: knowledge search failed: %v", err)
		retrieved = ""
	}
	return s.chatter.Reply(ctx, retrieved, input)
}

func (s *Service) continueBooking(ctx context.Context, sess *Session, input string) (string, error) {
	switch sess.stage {
	case stageName:
		name := strings.TrimSpace(input)
		if name == "" {
			return replyBadName, nil
		}
		sess.name = name
		sess.stage = stageDate
		return promptDate, nil

	case stageDate:
		date, err := resolveDate(input, s.now())
		if err != nil {
			return replyBadDate, nil
		}
		slots, err := s.booker.ListAvailable(ctx, date)
		if err != nil {
			return s.abort(sess, err)
		}
		if len(slots) == 0 {
			return replyNoSlots, nil
		}
		sess.date = date
		sess.slots = slots
		sess.stage = stageTime
		return slotPrompt(slots), nil

	case stageTime:
		slot, err := parse.NormalizeTime(input)
		if err != nil || !contains(sess.slots, slot) {
			return replyBadSlot + " " + slotPrompt(sess.slots), nil
		}
		sess.time = slot
		sess.stage = stageService
		return promptService, nil

	case stageService:
		return s.commit(ctx, sess, strings.TrimSpace(input))
	}
	sess.reset()
	return voice.CouldNotUnderstand, nil
}

func (s *Service) commit(ctx context.Context, sess *Session, service string) (string, error) {
	record, err := s.booker.Book(ctx, sess.name, sess.date, sess.time, service)
	if err == nil {
		if s.notify != nil {
			s.notify(record.ID)
		}
		reply := fmt.Sprintf("Your %s is booked for %s on %s at %s. Your booking ID is %d.",
			record.Service, record.CustomerName, record.Date, record.Time, record.ID)
		sess.reset()
		return reply, nil
	}

	var unavailable *booking.SlotUnavailableError
	var conflict *booking.SlotConflictError
	var badInput *booking.InvalidInputError
	var badTime *booking.InvalidTimeFormatError
	switch {
	case errors.As(err, &unavailable):
		return s.reofferSlots(sess, unavailable.Available), nil
	case errors.As(err, &conflict):
		// Someone else won the same slot between our check and the write.
		// Re-read availability and let the user pick again.
		slots, lerr := s.booker.ListAvailable(ctx, sess.date)
		if lerr != nil {
			return s.abort(sess, lerr)
		}
		return s.reofferSlots(sess, slots), nil
	case errors.As(err, &badTime):
		sess.stage = stageTime
		return replyBadSlot + " " + slotPrompt(sess.slots), nil
	case errors.As(err, &badInput):
		if badInput.Field == "service" {
			return promptService, nil
		}
		sess.stage = stageName
		return replyBadName, nil
	default:
		return s.abort(sess, err)
	}
}

// reofferSlots sends the dialog back to the time stage with a fresh
// availability list, or back to the date stage when the day filled up.
func (s *Service) reofferSlots(sess *Session, slots []string) string {
	if len(slots) == 0 {
		sess.stage = stageDate
		sess.slots = nil
		return replySlotTaken + " " + replyNoSlots
	}
	sess.stage = stageTime
	sess.slots = slots
	return replySlotTaken + " " + slotPrompt(slots)
}

func (s *Service) abort(sess *Session, err error) (string, error) {
	sess.reset()
	if errors.Is(err, store.ErrUnavailable) {
		return replyStoreDown, err
	}
	return replyStoreDown, err
}

func slotPrompt(slots []string) string {
	return fmt.Sprintf("Available slots are %s. What time would you like?", strings.Join(slots, ", "))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ListenFunc captures one utterance and returns its transcript.
type ListenFunc func(ctx context.Context) (string, error)

// VoiceLoop runs the spoken conversation until the caller stops talking.
// Silence ends the loop; an unintelligible utterance is apologised for and
// the loop continues.
func (s *Service) VoiceLoop(ctx context.Context, listen ListenFunc, speaker voice.Speaker) error {
	speak := func(text string) {
		if err := speaker.Speak(ctx, text); err != nil {
			log.Printf("assistant: speak failed: %v", err)
		}
	}

	speak(Greeting)
	sess := NewSession()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		text, err := listen(ctx)
		if errors.Is(err, voice.ErrSilence) {
			speak(Goodbye)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" || text == voice.CouldNotUnderstand {
			speak(voice.CouldNotUnderstand)
			continue
		}

		reply, err := s.Converse(ctx, sess, text)
		speak(reply)
		if err != nil {
			return err
		}
	}
}
