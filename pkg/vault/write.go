package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tendmd/tend/pkg/dateutil"
	"github.com/tendmd/tend/pkg/schedule"
)

// ApplyAdvance writes a confirmed review back onto the note named by the
// record. Only the two scheduling properties change; the write lands
// atomically through a sibling temp file so a crash never leaves a
// half-written note.
func (v *Vault) ApplyAdvance(a schedule.Advanced, fields schedule.Fields) error {
	path := filepath.Join(v.root, filepath.FromSlash(a.Record.ID))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vault: %w", err)
	}
	next := upsertFrontmatter(data, []Pair{
		{Key: fields.Date, Value: dateutil.Canonical(a.NextDue)},
		{Key: fields.Freq, Value: strconv.Itoa(a.ToLevel)},
	})
	return writeFileAtomic(path, next)
}

func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
