// Package log provides the runner logic for showing recent reviews.
package log

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tendmd/tend/pkg/history"
	"github.com/tendmd/tend/pkg/printers"
)

// Log lists journal entries recorded inside the window.
type Log struct {
	History   history.Store
	Window    time.Duration
	Label     string
	ShowPaths bool

	// Now is the clock used to anchor the window, nil means wall clock.
	Now func() time.Time
}

func (n *Log) Do(ctx context.Context) error {
	if n.History == nil {
		return errors.New("can not show the log, no journal")
	}

	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}
	entries := n.History.Since(ctx, now.Add(-n.Window))

	pp := printers.PrettyPrint{ShowPath: n.ShowPaths}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Reviewed in the last %s", n.Label), len(entries))
	pp.History(entries...)

	return nil
}
