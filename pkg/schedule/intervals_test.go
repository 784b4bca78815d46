package schedule

import (
	"reflect"
	"testing"
)

func TestParseIntervals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Intervals
	}{
		{"stock ladder", "1, 6, 9, 19, 75", Intervals{1, 6, 9, 19, 75}},
		{"no spaces", "2,4,8", Intervals{2, 4, 8}},
		{"ragged whitespace", "  3 ,  7,11 ", Intervals{3, 7, 11}},
		{"drops words", "1, six, 9", Intervals{1, 9}},
		{"drops zero and negatives", "0, -4, 5", Intervals{5}},
		{"drops fractions", "1.5, 3", Intervals{3}},
		{"empty string", "", nil},
		{"only garbage", "a, b, , -1", nil},
	}
	for _, tt := range tests {
		if got := ParseIntervals(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: ParseIntervals(%q) = %v, want %v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestLookupClampsToLastRung(t *testing.T) {
	ladder := ParseIntervals("1, 6, 9, 19, 75")
	for level := len(ladder); level < len(ladder)+20; level++ {
		if got := ladder.Lookup(level); got != 75 {
			t.Errorf("Lookup(%d) = %d, want 75", level, got)
		}
	}
}

func TestLookupEmptyLadder(t *testing.T) {
	var empty Intervals
	for _, level := range []int{0, 1, 5, 100} {
		if got := empty.Lookup(level); got != 1 {
			t.Errorf("empty Lookup(%d) = %d, want 1", level, got)
		}
	}
}

func TestLookupStockLadder(t *testing.T) {
	ladder := ParseIntervals(DefaultIntervals)
	tests := []struct {
		level int
		want  int
	}{
		{0, 1},
		{1, 6},
		{2, 9},
		{3, 19},
		{4, 75},
		{10, 75},
	}
	for _, tt := range tests {
		if got := ladder.Lookup(tt.level); got != tt.want {
			t.Errorf("Lookup(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestIntervalsString(t *testing.T) {
	if got := ParseIntervals("1,6,  9").String(); got != "1, 6, 9" {
		t.Errorf("String = %q, want %q", got, "1, 6, 9")
	}
	if got := (Intervals{}).String(); got != "" {
		t.Errorf("empty String = %q, want empty", got)
	}
}
