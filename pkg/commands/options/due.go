package options

import (
	"github.com/spf13/cobra"
)

// DueOptions filters and shapes the schedule listing.
type DueOptions struct {
	Tag      string
	Days     int
	Calendar bool
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Only show notes carrying this tag.")
	cmd.Flags().IntVarP(&o.Days, "days", "d", -1,
		"Days ahead that count as upcoming. Defaults to the configured horizon.")
	cmd.Flags().BoolVar(&o.Calendar, "cal", false,
		"Show a month calendar of due counts.")
}
