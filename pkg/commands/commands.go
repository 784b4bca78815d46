package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/tendmd/tend/pkg/app"
	"github.com/tendmd/tend/pkg/commands/options"
	"github.com/tendmd/tend/pkg/history"
	"github.com/tendmd/tend/pkg/logging"
	"github.com/tendmd/tend/pkg/settings"
	"github.com/tendmd/tend/pkg/vault"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tend",
		Short: base.Wrap80("Spaced review scheduling for a folder of markdown notes."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addDue(topLevel)
	addReview(topLevel)
	addIntervals(topLevel)
	addLog(topLevel)
	addWatch(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}

// newService loads settings, opens the vault and, when one is configured,
// the review journal. The journal is advisory so a broken one only warns.
func newService(vo *options.VaultOptions) (*app.Service, error) {
	cfg, err := settings.Load()
	if err != nil {
		return nil, err
	}
	if vo != nil && vo.Path != "" {
		cfg.Vault = vo.Path
	}

	v, err := vault.Open(cfg.Vault)
	if err != nil {
		return nil, err
	}

	svc := &app.Service{Vault: v, Settings: cfg}
	if cfg.History != "" {
		st, err := history.Open(cfg.History)
		if err != nil {
			logging.Warn("review journal unavailable", "path", cfg.History, "err", err)
		} else {
			svc.History = st
		}
	}
	return svc, nil
}
