// Package intervals provides the runner logic for showing the review ladder.
package intervals

import (
	"context"

	"github.com/tendmd/tend/pkg/printers"
	"github.com/tendmd/tend/pkg/schedule"
)

// Intervals prints the configured ladder and the urgency legend.
type Intervals struct {
	Ladder schedule.Intervals
}

func (n *Intervals) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Ladder(n.Ladder)
	pp.Legend()
	return nil
}
