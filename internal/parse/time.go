package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseableTime is returned when a spoken or typed time matches none of
// the accepted shapes.
var ErrUnparseableTime = errors.New("unparseable time")

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	compactRe  = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	meridiemRe = regexp.MustCompile(`(?i)^(\d{1,2})\s*(AM|PM)$`)
)

// NormalizeTime converts heterogeneous human time input into the canonical
// zero-padded 24-hour "HH:MM" key used by the slot catalog and stored rows.
// Accepted shapes, tried in order: "14:30" / "9:00", "1600", "4 PM".
// The 12-hour shape takes a bare hour only; "2:30 PM" is rejected.
func NormalizeTime(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// 1) Already a clock string.
	if strings.Contains(s, ":") && len(s) <= 5 {
		m := clockRe.FindStringSubmatch(s)
		if m == nil {
			return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return formatClock(hour, minute, raw)
	}

	// 2) Compact 24-hour form, e.g. "1600".
	if m := compactRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return formatClock(hour, minute, raw)
	}

	// 3) 12-hour form with meridiem marker, e.g. "4 PM".
	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
		}
		if hour == 12 {
			hour = 0
		}
		if strings.EqualFold(m[2], "PM") {
			hour += 12
		}
		return formatClock(hour, 0, raw)
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
}

func formatClock(hour, minute int, raw string) (string, error) {
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
