package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/commands/options"
	"github.com/tendmd/tend/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the schedule whenever a note changes",
		Example: `
tend watch
tend watch --vault ~/notes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService(vo)
			if err != nil {
				return output.HandleError(err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			s := watch.Watch{
				Service:   svc,
				Startup:   svc.Settings.NotifyOnStartup,
				ShowPaths: po.ShowPaths,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddVaultArgs(cmd, vo)
	options.AddShowPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
