package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/commands/options"
	"github.com/tendmd/tend/pkg/history"
	"github.com/tendmd/tend/pkg/runner/log"
	"github.com/tendmd/tend/pkg/settings"
	"github.com/tendmd/tend/pkg/timeutil"
)

func addLog(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recently reviewed notes",
		Example: `
tend log
tend log --last 2d
tend log --last 1w2d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := settings.Load()
			if err != nil {
				return output.HandleError(err)
			}
			window, label, err := timeutil.ParseWindow(wo.Last)
			if err != nil {
				return output.HandleError(err)
			}
			st, err := history.Open(cfg.History)
			if err != nil {
				return output.HandleError(err)
			}
			s := log.Log{
				History:   st,
				Window:    window,
				Label:     label,
				ShowPaths: po.ShowPaths,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
