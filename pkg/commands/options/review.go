package options

import (
	"github.com/spf13/cobra"
)

// ReviewOptions captures how a finished review should be recorded.
type ReviewOptions struct {
	Ref      string
	Interval int
	DryRun   bool
}

func AddReviewArgs(cmd *cobra.Command, o *ReviewOptions) {
	cmd.Flags().IntVarP(&o.Interval, "interval", "i", 0,
		"Wait this many days instead of asking the ladder.")
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false,
		"Print the outcome without touching the note.")
}
