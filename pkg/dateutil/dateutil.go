// Package dateutil provides calendar-day arithmetic for review scheduling.
// Due dates are day-granular: two times on the same day compare equal, and
// deltas are whole days.
package dateutil

import (
	"fmt"
	"time"
)

// LayoutISO is the canonical form for due dates, used for display and for
// writing back into note metadata.
const LayoutISO = "2006-01-02"

// Normalize truncates t to calendar-day granularity in its own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayDelta returns the number of whole calendar days from one date to the
// other, positive when to is later. Each operand contributes only its
// calendar date in its own location, so time of day, DST transitions, and a
// zone offset between the operands cannot shift the result: a date decoded
// in UTC and a clock east of UTC+11 still land on the same day.
func DayDelta(from, to time.Time) int {
	return int(civilDay(to).Sub(civilDay(from)) / (24 * time.Hour))
}

// civilDay pins t's calendar date to UTC midnight, making day subtraction
// exact.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Canonical formats t as zero-padded YYYY-MM-DD.
func Canonical(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDay parses a canonical YYYY-MM-DD string in the local calendar.
// The result is already day-granular.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// RelativeLabel maps a day delta to the phrase shown beside a note.
// It is total over all integers.
func RelativeLabel(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("%d days overdue", -days)
	case days == -1:
		return "1 day overdue"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
