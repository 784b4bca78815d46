package review

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tendmd/tend/pkg/app"
	"github.com/tendmd/tend/pkg/settings"
	"github.com/tendmd/tend/pkg/vault"
)

var clock = time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC)

func fixture(t *testing.T) (*app.Service, string) {
	t.Helper()
	dir := t.TempDir()
	note := "---\ntitle: Chords\nreview_next: 2026-06-01\nreview_freq: 1\n---\n\nPractice.\n"
	if err := os.WriteFile(filepath.Join(dir, "chords.md"), []byte(note), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}

	v, err := vault.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	svc := &app.Service{
		Vault: v,
		Settings: &settings.Settings{
			Vault:        dir,
			DateProperty: "review_next",
			FreqProperty: "review_freq",
			UpcomingDays: 7,
			Intervals:    "1, 6, 9, 19, 75",
		},
		Now: func() time.Time { return clock },
	}
	return svc, dir
}

func TestDoUsesLadderSuggestion(t *testing.T) {
	svc, dir := fixture(t)
	// Level 1 waits 6 days on the stock ladder.
	r := &Review{Service: svc, Ref: "chords"}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "review_next: 2026-06-08") {
		t.Errorf("note missing new date:\n%s", got)
	}
	if !strings.Contains(got, "review_freq: 2") {
		t.Errorf("note missing new level:\n%s", got)
	}
}

func TestDoHonorsOverride(t *testing.T) {
	svc, dir := fixture(t)
	r := &Review{Service: svc, Ref: "chords.md", Days: 30}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "review_next: 2026-07-02") {
		t.Errorf("override ignored:\n%s", data)
	}
}

func TestDoRejectsNegativeOverride(t *testing.T) {
	svc, dir := fixture(t)
	before, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	r := &Review{Service: svc, Ref: "chords", Days: -4}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected rejection of a negative interval")
	}

	after, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(before) != string(after) {
		t.Error("rejected review modified the note")
	}
}

func TestDoDryRunLeavesNote(t *testing.T) {
	svc, dir := fixture(t)
	before, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	r := &Review{Service: svc, Ref: "chords", DryRun: true}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	after, err := os.ReadFile(filepath.Join(dir, "chords.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(before) != string(after) {
		t.Error("dry run modified the note")
	}
}

func TestDoUnknownNote(t *testing.T) {
	svc, _ := fixture(t)
	r := &Review{Service: svc, Ref: "missing"}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Errorf("Do = %v, want ErrNotFound", err)
	}
}
