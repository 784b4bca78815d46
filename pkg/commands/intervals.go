package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/runner/intervals"
	"github.com/tendmd/tend/pkg/settings"
)

func addIntervals(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "intervals",
		Aliases: []string{"ladder"},
		Short:   "Print the review ladder and the bucket key",
		Example: `
tend intervals
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return output.HandleError(err)
			}
			s := intervals.Intervals{Ladder: cfg.Ladder()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
