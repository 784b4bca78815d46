package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tendmd/tend/pkg/commands/options"
	"github.com/tendmd/tend/pkg/runner/review"
)

func addReview(topLevel *cobra.Command) {
	vo := &options.VaultOptions{}
	ro := &options.ReviewOptions{}
	po := &options.PathOptions{}

	cmd := &cobra.Command{
		Use:     "review",
		Aliases: []string{"done", "reviewed"},
		Short:   "Record a finished review and schedule the next one",
		Example: `
tend review topology.md
tend review Kitchen Log
tend review topology.md --interval 3
tend review topology.md --dry-run
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note path or title")
			}
			ro.Ref = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService(vo)
			if err != nil {
				return output.HandleError(err)
			}
			s := review.Review{
				Service:   svc,
				Ref:       ro.Ref,
				Days:      ro.Interval,
				DryRun:    ro.DryRun,
				ShowPaths: po.ShowPaths,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddVaultArgs(cmd, vo)
	options.AddReviewArgs(cmd, ro)
	options.AddShowPathArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
