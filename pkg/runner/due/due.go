// Package due provides the runner logic for listing scheduled notes.
package due

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/tendmd/tend/pkg/app"
	"github.com/tendmd/tend/pkg/printers"
	"github.com/tendmd/tend/pkg/schedule"
)

// Due scans the vault and renders the schedule bucketed by urgency.
type Due struct {
	Service   *app.Service
	Tag       string
	JSON      bool
	ShowPaths bool
	Calendar  bool
}

func (n *Due) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list due notes, no service")
	}

	snap, err := n.Service.Scan(ctx)
	if err != nil {
		return err
	}

	records := snap.Records
	buckets := snap.Buckets
	if n.Tag != "" {
		records = tagged(records, n.Tag)
		buckets = schedule.Bucketize(records, n.Service.Settings.UpcomingDays)
	}

	if n.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buckets)
	}

	pp := printers.PrettyPrint{ShowPath: n.ShowPaths}
	pp.NewLine()
	if n.Calendar {
		pp.Month(snap.Taken, records...)
	}
	pp.Buckets(buckets)
	pp.Summary(buckets)

	return nil
}

func tagged(all []schedule.Record, tag string) []schedule.Record {
	c := make([]schedule.Record, 0, len(all))
	for _, a := range all {
		if a.HasTag(tag) {
			c = append(c, a)
		}
	}
	return c
}
