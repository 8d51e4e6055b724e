package assistant

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ordinalRe = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)

// spokenDateLayouts are the month-and-day shapes callers actually say.
var spokenDateLayouts = []string{
	"January 2",
	"2 January",
	"Jan 2",
	"2 Jan",
}

// resolveDate turns user date input into the canonical YYYY-MM-DD form the
// coordinator expects. It accepts the canonical form directly, or a spoken
// month-and-day ("march 25", "25th march"), resolved to the next occurrence
// relative to today: a month/day already behind us this year means next year.
func resolveDate(input string, today time.Time) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), nil
	}

	s = ordinalRe.ReplaceAllString(s, "$1")
	s = capitalizeWords(s)

	for _, layout := range spokenDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		resolved := time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location())
		// The cutoff is local midnight. Truncate works on UTC epoch days and
		// would push a same-day date into next year east of UTC.
		cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if resolved.Before(cutoff) {
			resolved = resolved.AddDate(1, 0, 0)
		}
		return resolved.Format("2006-01-02"), nil
	}

	return "", fmt.Errorf("cannot interpret date %q", input)
}

// capitalizeWords uppercases the first letter of each word so lowercase
// transcripts ("march 25") match time.Parse month names.
func capitalizeWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
