package schedule

import (
	"encoding/json"
	"time"

	"github.com/tendmd/tend/pkg/dateutil"
)

// Fields names the two frontmatter properties the scheduler reads and
// writes. Everything else in a note's metadata is ignored, except the
// conventional tags key.
type Fields struct {
	Date string // due date property, canonical YYYY-MM-DD
	Freq string // review level property, non-negative integer
}

// DefaultFields returns the stock property names.
func DefaultFields() Fields {
	return Fields{Date: "review_next", Freq: "review_freq"}
}

// RawRecord is one unvalidated item as handed over by a storage
// collaborator. Meta holds the note's frontmatter as decoded key-value
// pairs; only the configured date and level keys plus "tags" are read.
type RawRecord struct {
	ID    string
	Title string
	Meta  map[string]any
}

// Record is one reviewable note with its derived urgency. Records are
// rebuilt on every scan and discarded after rendering: DaysUntilDue is only
// meaningful relative to the clock that scan ran against, so a Record must
// never be cached across scans.
type Record struct {
	ID           string
	Title        string
	Level        int
	Due          time.Time
	DaysUntilDue int
	Tags         []string
}

// recordJSON is the serialized form of a Record. Due is written in the
// canonical day form rather than RFC 3339, matching what goes back into
// frontmatter.
type recordJSON struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Level        int      `json:"level"`
	Due          string   `json:"due"`
	DaysUntilDue int      `json:"days_until_due"`
	Tags         []string `json:"tags,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:           r.ID,
		Title:        r.Title,
		Level:        r.Level,
		Due:          dateutil.Canonical(r.Due),
		DaysUntilDue: r.DaysUntilDue,
		Tags:         r.Tags,
	})
}

// HasTag reports whether the record carries the given tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
