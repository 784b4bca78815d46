// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// VaultOptions points a command at a notes folder.
type VaultOptions struct {
	Path string
}

func AddVaultArgs(cmd *cobra.Command, o *VaultOptions) {
	cmd.Flags().StringVarP(&o.Path, "vault", "v", "",
		"Path to the notes folder. Defaults to the configured vault.")
}
