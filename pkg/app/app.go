// Package app wires the vault, settings, and history into the operations
// the commands run. Runners share this layer so behavior lives in one
// place regardless of which command asked.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tendmd/tend/pkg/dateutil"
	"github.com/tendmd/tend/pkg/history"
	"github.com/tendmd/tend/pkg/logging"
	"github.com/tendmd/tend/pkg/schedule"
	"github.com/tendmd/tend/pkg/settings"
	"github.com/tendmd/tend/pkg/vault"
)

// Service provides the high-level review operations.
type Service struct {
	Vault    *vault.Vault
	Settings *settings.Settings
	History  history.Store // optional; reviews work without a journal

	// Now is the clock used for scans and advances. Nil means wall clock.
	// One reading covers one whole logical operation, so results stay
	// consistent even when a scan straddles midnight.
	Now func() time.Time
}

var (
	ErrNotFound    = errors.New("app: note not found")
	ErrBadInterval = errors.New("app: interval must be a positive number of days")
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Snapshot is one scan of the vault. Records and Buckets are derived from
// the same clock reading, Taken.
type Snapshot struct {
	Taken   time.Time
	Records []schedule.Record
	Buckets schedule.Buckets
}

// Scan reads the vault and buckets every scheduled note.
func (s *Service) Scan(ctx context.Context) (*Snapshot, error) {
	if s.Vault == nil {
		return nil, errors.New("app: no vault configured")
	}
	if s.Settings == nil {
		return nil, errors.New("app: no settings configured")
	}
	raw, err := s.Vault.Records(ctx)
	if err != nil {
		return nil, err
	}
	taken := s.now()
	records := schedule.Scan(raw, s.Settings.Fields(), taken)
	return &Snapshot{
		Taken:   taken,
		Records: records,
		Buckets: schedule.Bucketize(records, s.Settings.UpcomingDays),
	}, nil
}

// Find resolves a note reference against a snapshot: an exact path, a
// path missing its .md extension, or a title, checked in that order.
// Title matching is case-insensitive and must be unambiguous.
func (s *Service) Find(snap *Snapshot, ref string) (schedule.Record, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return schedule.Record{}, ErrNotFound
	}
	norm := filepath.ToSlash(ref)
	for _, r := range snap.Records {
		if r.ID == norm || r.ID == norm+".md" {
			return r, nil
		}
	}
	var matches []schedule.Record
	for _, r := range snap.Records {
		if strings.EqualFold(r.Title, ref) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return schedule.Record{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return schedule.Record{}, fmt.Errorf("app: %q matches %s; use a path", ref, strings.Join(ids, ", "))
	}
}

// SuggestedDays returns the ladder wait for the record's current level.
func (s *Service) SuggestedDays(rec schedule.Record) int {
	return s.Settings.Ladder().Lookup(rec.Level)
}

// Review advances a note one level and persists the new schedule onto it.
// The scheduling engine trusts its day count, so the positive-days boundary
// is enforced here before anything is computed. With dryRun set nothing is
// written and the result shows what would happen.
func (s *Service) Review(ctx context.Context, rec schedule.Record, days int, dryRun bool) (schedule.Advanced, error) {
	if days <= 0 {
		return schedule.Advanced{}, fmt.Errorf("%w: got %d", ErrBadInterval, days)
	}
	if s.Vault == nil {
		return schedule.Advanced{}, errors.New("app: no vault configured")
	}
	if s.Settings == nil {
		return schedule.Advanced{}, errors.New("app: no settings configured")
	}

	now := s.now()
	adv := schedule.Advance(rec, days, now)
	if dryRun {
		return adv, nil
	}
	if err := s.Vault.ApplyAdvance(adv, s.Settings.Fields()); err != nil {
		return schedule.Advanced{}, err
	}

	if s.History != nil {
		e := history.Entry{
			Note:       rec.ID,
			Title:      rec.Title,
			FromLevel:  adv.FromLevel,
			ToLevel:    adv.ToLevel,
			WasDue:     rec.DaysUntilDue,
			NextDue:    dateutil.Canonical(adv.NextDue),
			ReviewedAt: history.Timestamp{Time: now},
		}
		if err := s.History.Append(e); err != nil {
			// The journal is advisory; the review itself already landed.
			logging.Warn("could not record review", "note", rec.ID, "err", err)
		}
	}
	return adv, nil
}
