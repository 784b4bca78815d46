// Package review provides the runner logic for recording a finished review.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/tendmd/tend/pkg/app"
	"github.com/tendmd/tend/pkg/printers"
)

// Review advances a note to its next rung and writes the new date back.
type Review struct {
	Service *app.Service
	Ref     string
	// Days overrides the ladder when positive. Zero means ask the ladder.
	Days      int
	DryRun    bool
	ShowPaths bool
}

func (n *Review) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not review, no service")
	}

	snap, err := n.Service.Scan(ctx)
	if err != nil {
		return err
	}
	rec, err := n.Service.Find(snap, n.Ref)
	if err != nil {
		return err
	}

	days := n.Days
	if days == 0 {
		days = n.Service.SuggestedDays(rec)
	}
	if days <= 0 {
		return fmt.Errorf("review interval must be a positive number of days, got %d", days)
	}

	adv, err := n.Service.Review(ctx, rec, days, n.DryRun)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowPath: n.ShowPaths}
	pp.NewLine()
	pp.Advanced(adv)
	if n.DryRun {
		_, _ = color.New(color.Faint).Println("  dry run, nothing written")
	}
	pp.NewLine()

	return nil
}
