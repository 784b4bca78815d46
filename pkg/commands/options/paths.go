package options

import (
	"github.com/spf13/cobra"
)

// PathOptions toggles vault-relative paths in listings.
type PathOptions struct {
	ShowPaths bool
}

func AddShowPathArgs(cmd *cobra.Command, o *PathOptions) {
	cmd.Flags().BoolVarP(&o.ShowPaths, "paths", "p", false,
		"Show the vault-relative path of each note.")
}
