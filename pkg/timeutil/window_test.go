package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 7 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowCompound(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 9*24*time.Hour + 6*time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h" {
		t.Fatalf("expected label 1w2d6h, got %s", label)
	}
}

func TestParseWindowAliases(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"2days", 48 * time.Hour},
		{"3 d", 72 * time.Hour},
		{"1 week", 7 * 24 * time.Hour},
		{"90min", 90 * time.Minute},
		{"12HR", 12 * time.Hour},
	}
	for _, tt := range tests {
		dur, _, err := ParseWindow(tt.in)
		if err != nil {
			t.Errorf("ParseWindow(%q): %v", tt.in, err)
			continue
		}
		if dur != tt.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tt.in, dur, tt.want)
		}
	}
}

func TestParseWindowErrors(t *testing.T) {
	for _, in := range []string{"x", "1", "5y", "-1d", "0d", "d1"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Errorf("ParseWindow(%q) should fail", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{7 * 24 * time.Hour, "1w"},
		{9*24*time.Hour + 6*time.Hour, "1w2d6h"},
		{time.Minute, "1m"},
		{0, "0s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatWindow(tt.in); got != tt.want {
			t.Errorf("FormatWindow(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
