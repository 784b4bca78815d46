package schedule

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tendmd/tend/pkg/dateutil"
)

// Scan validates raw records into Records relative to the given clock. Raw
// records without a parseable due date are dropped silently; they are notes
// that simply are not scheduled. The result is sorted most urgent first,
// with ties keeping their input order, so repeated scans over the same
// input and clock produce identical output.
func Scan(raw []RawRecord, fields Fields, now time.Time) []Record {
	today := dateutil.Normalize(now)
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		due, ok := parseDue(r.Meta[fields.Date])
		if !ok {
			continue
		}
		records = append(records, Record{
			ID:           r.ID,
			Title:        r.Title,
			Level:        coerceLevel(r.Meta[fields.Freq]),
			Due:          due,
			DaysUntilDue: dateutil.DayDelta(today, due),
			Tags:         collectTags(r.Meta["tags"]),
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DaysUntilDue < records[j].DaysUntilDue
	})
	return records
}

// parseDue extracts a day-granular due date from a frontmatter value. YAML
// decodes unquoted dates into time.Time and quoted ones into string; both
// are accepted. Decoded timestamps arrive in UTC, so their calendar day is
// rebuilt in the local zone to share one calendar with string dates.
// Anything else means the note is not scheduled.
func parseDue(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return localDay(d), true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := dateutil.ParseDay(s); err == nil {
			return t, true
		}
		// Hand-edited dates sometimes carry a time component; accept the
		// full stamp and keep the day.
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return localDay(t), true
		}
	}
	return time.Time{}, false
}

// localDay rebuilds t's calendar date at local midnight, the shape ParseDay
// returns.
func localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// coerceLevel reads a review level from a frontmatter value. Levels are
// user-edited, so anything that is not a non-negative integer collapses to
// zero instead of erroring. Fractional numbers keep their whole part.
func coerceLevel(v any) int {
	switch n := v.(type) {
	case int:
		if n > 0 {
			return n
		}
	case int64:
		if n > 0 {
			return int(n)
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	case float64:
		if i := int(n); i > 0 {
			return i
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i > 0 {
			return i
		}
	}
	return 0
}

// collectTags gathers the tags field when present. Frontmatter tags show up
// as a YAML list or as one comma-separated scalar; both forms are kept in
// written order.
func collectTags(v any) []string {
	var out []string
	switch tags := v.(type) {
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case []string:
		for _, s := range tags {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(tags, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
