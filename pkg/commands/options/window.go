package options

import (
	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/timeutil"
)

// WindowOptions bounds how far back a listing looks.
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Last, "last", "l", timeutil.DefaultWindow,
		"How far back to look, like 12h, 2d or 1w.")
}
