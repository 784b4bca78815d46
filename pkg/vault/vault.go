// Package vault reads and writes review metadata on a directory tree of
// markdown notes. The vault is the only durable home of the schedule;
// everything else in tend is derived from the frontmatter read here and
// rebuilt on every scan.
package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"

	"github.com/tendmd/tend/pkg/logging"
	"github.com/tendmd/tend/pkg/schedule"
)

// Vault is a directory tree of markdown notes.
type Vault struct {
	root string
}

// Open resolves and checks the vault directory. The path may start with ~.
func Open(path string) (*Vault, error) {
	root, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault: %s is not a directory", root)
	}
	return &Vault{root: root}, nil
}

// Root returns the resolved vault directory.
func (v *Vault) Root() string {
	return v.root
}

// Records reads the frontmatter of every note in the vault. Notes are read
// concurrently but the result keeps a stable path order. A note that cannot
// be read is skipped with a warning; a note whose frontmatter will not
// decode still appears with empty metadata, and the scanner decides its
// fate from there.
func (v *Vault) Records(ctx context.Context) ([]schedule.RawRecord, error) {
	paths, err := v.notePaths()
	if err != nil {
		return nil, err
	}

	records := make([]schedule.RawRecord, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, p := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, err := v.readNote(p)
			if err != nil {
				logging.Warn("skipping note", "path", p, "err", err)
				return nil
			}
			records[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]schedule.RawRecord, 0, len(records))
	for _, r := range records {
		if r.ID != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

// notePaths walks the vault for markdown files, skipping dot directories
// like .obsidian and .git along with dot files.
func (v *Vault) notePaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != v.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isNote(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// readNote decodes one note's frontmatter. The display title is the file
// name without its extension unless the frontmatter carries a title.
func (v *Vault) readNote(path string) (schedule.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.RawRecord{}, err
	}
	id := v.rel(path)
	if id == "" {
		return schedule.RawRecord{}, fmt.Errorf("vault: %s is outside the vault", path)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	meta := parseFrontmatter(data)
	if t, ok := meta["title"].(string); ok && strings.TrimSpace(t) != "" {
		title = strings.TrimSpace(t)
	}

	return schedule.RawRecord{ID: id, Title: title, Meta: meta}, nil
}

func (v *Vault) rel(path string) string {
	rel, err := filepath.Rel(v.root, path)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

func isNote(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), ".md")
}
