package booking

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a missing or malformed booking field. Callers
// recover by re-prompting for the named field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTimeFormatError reports a requested time that could not be
// interpreted. Callers recover by re-prompting for the time.
type InvalidTimeFormatError struct {
	Raw string
	Err error
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("cannot interpret time %q", e.Raw)
}

func (e *InvalidTimeFormatError) Unwrap() error {
	return e.Err
}

// SlotUnavailableError reports a time that is outside business hours or
// already taken. Available carries the currently open slots so a caller can
// offer alternatives without a second store round trip.
type SlotUnavailableError struct {
	Date      string
	Time      string
	Available []string
}

func (e *SlotUnavailableError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("slot %s on %s is not available; no slots remain", e.Time, e.Date)
	}
	return fmt.Sprintf("slot %s on %s is not available; open slots: %s",
		e.Time, e.Date, strings.Join(e.Available, ", "))
}

// SlotConflictError reports a double booking detected after commit: another
// record for the same slot carries a smaller ID, so that record wins and the
// just-written one is the flagged loser. Callers recover by re-querying
// availability and retrying at most once.
type SlotConflictError struct {
	Date     string
	Time     string
	WinnerID int64
	LoserID  int64
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s was booked concurrently; booking %d won over %d",
		e.Time, e.Date, e.WinnerID, e.LoserID)
}
