// Package watch provides the runner logic for live schedule updates.
package watch

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/tendmd/tend/pkg/app"
	"github.com/tendmd/tend/pkg/printers"
)

// Watch rescans the vault whenever a note changes and reprints the
// schedule. It blocks until the context is cancelled.
type Watch struct {
	Service   *app.Service
	Startup   bool
	ShowPaths bool
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Vault == nil {
		return errors.New("can not watch, no vault")
	}

	if n.Startup {
		if err := n.show(ctx); err != nil {
			return err
		}
	} else {
		f := color.New(color.Faint)
		_, _ = f.Printf("watching %s\n", n.Service.Vault.Root())
	}

	events, err := n.Service.Vault.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.show(ctx); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) show(ctx context.Context) error {
	snap, err := n.Service.Scan(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowPath: n.ShowPaths}
	pp.NewLine()
	pp.Buckets(snap.Buckets)
	pp.Summary(snap.Buckets)
	f := color.New(color.Faint)
	_, _ = f.Printf("watching %s, last scan %s\n", n.Service.Vault.Root(),
		snap.Taken.Format("15:04:05"))

	return nil
}
