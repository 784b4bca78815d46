package schedule

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tendmd/tend/pkg/dateutil"
)

var t0 = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func TestScanSkipsUnscheduledNotes(t *testing.T) {
	raw := []RawRecord{
		{ID: "a.md", Title: "a", Meta: map[string]any{"review_next": "not-a-date"}},
		{ID: "b.md", Title: "b", Meta: map[string]any{"review_next": ""}},
		{ID: "c.md", Title: "c", Meta: map[string]any{"other": "2026-04-10"}},
		{ID: "d.md", Title: "d", Meta: nil},
		{ID: "e.md", Title: "e", Meta: map[string]any{"review_next": "2026-04-10"}},
	}
	got := Scan(raw, DefaultFields(), t0)
	if len(got) != 1 || got[0].ID != "e.md" {
		t.Fatalf("Scan kept %v, want just e.md", got)
	}
}

func TestScanCoercesLevel(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"missing", nil, 0},
		{"int", 3, 3},
		{"numeric string", "4", 4},
		{"padded string", " 2 ", 2},
		{"word", "three", 0},
		{"negative", -2, 0},
		{"float", 2.9, 2},
		{"int64", int64(6), 6},
		{"uint64", uint64(7), 7},
		{"uint64 past int range", uint64(math.MaxUint64), 0},
	}
	for _, tt := range tests {
		meta := map[string]any{"review_next": "2026-04-10"}
		if tt.value != nil {
			meta["review_freq"] = tt.value
		}
		got := Scan([]RawRecord{{ID: "n.md", Meta: meta}}, DefaultFields(), t0)
		if len(got) != 1 {
			t.Fatalf("%s: record dropped", tt.name)
		}
		if got[0].Level != tt.want {
			t.Errorf("%s: Level = %d, want %d", tt.name, got[0].Level, tt.want)
		}
	}
}

func TestScanAcceptsDecodedTimeValues(t *testing.T) {
	// Unquoted YAML dates arrive as time.Time, not string.
	raw := []RawRecord{{
		ID:   "t.md",
		Meta: map[string]any{"review_next": time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)},
	}}
	got := Scan(raw, DefaultFields(), t0)
	if len(got) != 1 {
		t.Fatal("record with time.Time date was dropped")
	}
	if got[0].DaysUntilDue != 3 {
		t.Errorf("DaysUntilDue = %d, want 3", got[0].DaysUntilDue)
	}
}

func TestScanAcceptsTimestampStrings(t *testing.T) {
	raw := []RawRecord{{
		ID:   "s.md",
		Meta: map[string]any{"review_next": "2026-04-12T08:00:00Z"},
	}}
	got := Scan(raw, DefaultFields(), t0)
	if len(got) != 1 {
		t.Fatal("record with RFC 3339 date was dropped")
	}
	if want := "2026-04-12"; dateutil.Canonical(got[0].Due) != want {
		t.Errorf("Due = %v, want %s", got[0].Due, want)
	}
	if got[0].DaysUntilDue != 2 {
		t.Errorf("DaysUntilDue = %d, want 2", got[0].DaysUntilDue)
	}
}

func TestScanKeepsCalendarDayFarFromUTC(t *testing.T) {
	// A decoded date carries UTC midnight; a clock thirteen hours ahead must
	// still call the note due today, not tomorrow.
	east := time.FixedZone("UTC+13", 13*60*60)
	now := time.Date(2026, 4, 13, 9, 0, 0, 0, east)
	raw := []RawRecord{{
		ID:   "t.md",
		Meta: map[string]any{"review_next": time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)},
	}}
	got := Scan(raw, DefaultFields(), now)
	if len(got) != 1 {
		t.Fatal("record dropped")
	}
	if got[0].DaysUntilDue != 0 {
		t.Errorf("DaysUntilDue = %d, want 0", got[0].DaysUntilDue)
	}
	b := Bucketize(got, 7)
	if len(b.Today) != 1 {
		t.Errorf("note not bucketed today: %+v", b)
	}
}

func TestScanHonorsConfiguredFields(t *testing.T) {
	fields := Fields{Date: "next", Freq: "passes"}
	raw := []RawRecord{{
		ID:   "n.md",
		Meta: map[string]any{"next": "2026-04-11", "passes": 5, "review_next": "2020-01-01"},
	}}
	got := Scan(raw, fields, t0)
	if len(got) != 1 {
		t.Fatal("record dropped")
	}
	if got[0].Level != 5 || got[0].DaysUntilDue != 1 {
		t.Errorf("got level %d delta %d, want 5 and 1", got[0].Level, got[0].DaysUntilDue)
	}
}

func TestScanCollectsTags(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"absent", nil, nil},
		{"list", []any{"physics", "qm"}, []string{"physics", "qm"}},
		{"comma scalar", "physics, qm", []string{"physics", "qm"}},
		{"single scalar", "physics", []string{"physics"}},
		{"blank entries dropped", []any{"", "  ", "qm"}, []string{"qm"}},
	}
	for _, tt := range tests {
		meta := map[string]any{"review_next": "2026-04-10"}
		if tt.value != nil {
			meta["tags"] = tt.value
		}
		got := Scan([]RawRecord{{ID: "n.md", Meta: meta}}, DefaultFields(), t0)
		if len(got) != 1 {
			t.Fatalf("%s: record dropped", tt.name)
		}
		if !reflect.DeepEqual(got[0].Tags, tt.want) {
			t.Errorf("%s: Tags = %v, want %v", tt.name, got[0].Tags, tt.want)
		}
	}
}

func TestScanSortsMostUrgentFirst(t *testing.T) {
	raw := []RawRecord{
		{ID: "later.md", Meta: map[string]any{"review_next": "2026-04-20"}},
		{ID: "overdue.md", Meta: map[string]any{"review_next": "2026-04-07"}},
		{ID: "today-1.md", Meta: map[string]any{"review_next": "2026-04-10"}},
		{ID: "today-2.md", Meta: map[string]any{"review_next": "2026-04-10"}},
	}
	got := Scan(raw, DefaultFields(), t0)
	want := []string{"overdue.md", "today-1.md", "today-2.md", "later.md"}
	if len(got) != len(want) {
		t.Fatalf("Scan kept %d records, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestScanIsDeterministic(t *testing.T) {
	raw := []RawRecord{
		{ID: "x.md", Title: "x", Meta: map[string]any{"review_next": "2026-04-10", "review_freq": 2}},
		{ID: "y.md", Title: "y", Meta: map[string]any{"review_next": "2026-04-10", "review_freq": 1}},
		{ID: "z.md", Title: "z", Meta: map[string]any{"review_next": "2026-04-08"}},
	}
	first := Scan(raw, DefaultFields(), t0)
	second := Scan(raw, DefaultFields(), t0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scans differ:\n%v\n%v", first, second)
	}
}

func TestScanOverdueScenario(t *testing.T) {
	raw := []RawRecord{{ID: "o.md", Meta: map[string]any{"review_next": "2026-04-07"}}}
	got := Scan(raw, DefaultFields(), t0)
	if len(got) != 1 {
		t.Fatal("record dropped")
	}
	if got[0].DaysUntilDue != -3 {
		t.Fatalf("DaysUntilDue = %d, want -3", got[0].DaysUntilDue)
	}
	b := Bucketize(got, 7)
	if len(b.Overdue) != 1 || b.Overdue[0].ID != "o.md" {
		t.Errorf("record not bucketed overdue: %+v", b)
	}
	if label := dateutil.RelativeLabel(got[0].DaysUntilDue); label != "3 days overdue" {
		t.Errorf("label = %q, want %q", label, "3 days overdue")
	}
}
