package history

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/tendmd/tend/pkg/logging"
)

// Store is the persistence contract for the review journal.
type Store interface {
	Append(e Entry) error
	List(ctx context.Context) []Entry
	Since(ctx context.Context, cutoff time.Time) []Entry
}

const layoutISO = "2006-01-02"

// Open returns a Store backed by diskv rooted at path. The path may start
// with ~; the directory is created on first write.
func Open(path string) (Store, error) {
	base, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	return &journal{d: diskv.New(diskv.Options{
		BasePath:          base,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type journal struct {
	d *diskv.Diskv
}

func (j *journal) Append(e Entry) error {
	if e.ReviewedAt.IsZero() {
		return errors.New("history: entry has no review time")
	}
	key := toKey(&e)
	data, err := json.Marshal(&e)
	if err != nil {
		return err
	}
	return j.d.Write(key, data)
}

func (j *journal) List(ctx context.Context) []Entry {
	return j.collect(ctx, func(Entry) bool { return true })
}

func (j *journal) Since(ctx context.Context, cutoff time.Time) []Entry {
	return j.collect(ctx, func(e Entry) bool {
		return !e.ReviewedAt.Before(cutoff)
	})
}

func (j *journal) collect(ctx context.Context, keep func(Entry) bool) []Entry {
	all := make([]Entry, 0)
	for key := range j.d.Keys(ctx.Done()) {
		e, err := j.read(key)
		if err != nil {
			logging.Warn("skipping history entry", "key", key, "err", err)
			continue
		}
		if keep(e) {
			all = append(all, e)
		}
	}
	sortEntries(all)
	return all
}

func (j *journal) read(key string) (Entry, error) {
	val, err := j.d.Read(key)
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := json.Unmarshal(val, &e); err != nil {
		return Entry{}, err
	}
	if e.ID == "" {
		e.ID = keyToPath(key).FileName
	}
	return e, nil
}

// sortEntries orders newest review first; ties fall back to note path.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		lt := entries[i].ReviewedAt.Time
		rt := entries[j].ReviewedAt.Time
		if lt.Equal(rt) {
			return entries[i].Note < entries[j].Note
		}
		return lt.After(rt)
	})
}

// keyToPath shards `date-id` keys into year/month/day directories.
func keyToPath(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKey(pk *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pk.Path, "-"), pk.FileName)
}

// toKey makes `date-id`, assigning a content-derived ID when absent.
func toKey(e *Entry) string {
	if e.ID == "" {
		b, _ := json.Marshal(e)
		sum := md5.Sum(b)
		e.ID = fmt.Sprintf("%x", sum[:8])
	}
	return fmt.Sprintf("%s-%s", e.ReviewedAt.UTC().Format(layoutISO), e.ID)
}
