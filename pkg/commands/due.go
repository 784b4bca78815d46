package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/commands/options"
	"github.com/tendmd/tend/pkg/runner/due"
)

func addDue(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	do := &options.DueOptions{}
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:     "due",
		Aliases: []string{"ls", "list"},
		Short:   "List scheduled notes bucketed by urgency",
		Example: `
tend due
tend due --tag exam
tend due --days 14
tend due --cal
tend due --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService(vo)
			if err != nil {
				return output.HandleError(err)
			}
			if do.Days >= 0 {
				svc.Settings.UpcomingDays = do.Days
			}
			s := due.Due{
				Service:   svc,
				Tag:       do.Tag,
				JSON:      output.JSON,
				ShowPaths: po.ShowPaths,
				Calendar:  do.Calendar,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddVaultArgs(cmd, vo)
	options.AddDueArgs(cmd, do)
	options.AddShowPathArgs(cmd, po)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
