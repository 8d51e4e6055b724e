package assistant

import "github.com/google/uuid"

type stage int

const (
	stageIdle stage = iota
	stageName
	stageDate
	stageTime
	stageService
)

// Session holds the state of one conversation across turns. The booking
// dialog collects one field per turn; outside the dialog the session is idle.
type Session struct {
	ID string

	stage stage
	name  string
	date  string   // canonical YYYY-MM-DD once collected
	time  string   // canonical HH:MM once collected
	slots []string // availability offered with the last time prompt
}

// NewSession creates an idle session with a fresh identifier.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) reset() {
	s.stage = stageIdle
	s.name = ""
	s.date = ""
	s.time = ""
	s.slots = nil
}
