package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tendmd/tend/pkg/logging"
)

// Event is emitted by Watch when notes change. Paths lists the changed
// notes relative to the vault root; an empty list means something moved
// underneath the watcher and callers should rescan everything.
type Event struct {
	Paths []string
}

// Watch streams change events until ctx is cancelled. Bursts of writes are
// coalesced so one save in an editor triggers one event, not five. Callers
// should drain the channel; it closes once ctx is done or the watcher hits
// an unrecoverable error.
func (v *Vault) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("vault: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logging.Warn("watcher close", "err", err)
			}
		})
	}

	dirs, err := v.watchDirs()
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("vault: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("vault: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Track watched directories so new ones can be added at runtime
		// without duplicating watches.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; the next burst triggers a
				// rescan anyway.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn("watcher error", "err", err)
				throttle.Enqueue("", send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						dir := filepath.Clean(evt.Name)
						if strings.HasPrefix(filepath.Base(dir), ".") {
							continue
						}
						if _, found := watched[dir]; !found {
							if err := watcher.Add(dir); err != nil {
								logging.Warn("watch new directory", "dir", dir, "err", err)
							} else {
								watched[dir] = struct{}{}
							}
						}
						throttle.Enqueue("", send)
						continue
					}
				}
				if !isNote(evt.Name) {
					continue
				}
				throttle.Enqueue(v.rel(evt.Name), send)
			}
		}
	}()

	return events, nil
}

// watchDirs walks the vault and returns every directory to watch, skipping
// dot directories the same way the scanner does.
func (v *Vault) watchDirs() ([]string, error) {
	dirs := []string{v.root}
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() || path == v.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

// changeThrottle coalesces rapid filesystem notifications so a burst of
// writes produces one event instead of dozens.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(path string, send func(Event)) {
	t.mu.Lock()
	if path != "" {
		t.pending[path] = struct{}{}
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	send(Event{Paths: paths})
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
