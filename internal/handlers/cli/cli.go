package cli

import (
	"context"
	"os"

	"github.com/gabapcia/origintrace/internal/custodianregistry"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the origintrace CLI application.
//
// It registers all available commands:
//
//   - `trace`: Rebuilds the custody chain of an asset from the ledger.
//   - `replay`: Rebuilds the custody chain from a saved history file.
//   - `history`: Prints the stored history of an asset.
//   - `custodian`: Manages custodian aliases (add, remove, list).
//
// defaultCustodian is used by trace and replay when no --custodian flag is given.
func Run(ctx context.Context, ts tracer.Service, cr custodianregistry.Service, defaultCustodian string) error {
	return newApp(ts, cr, defaultCustodian).Run(ctx, os.Args)
}

// newApp assembles the command tree.
func newApp(ts tracer.Service, cr custodianregistry.Service, defaultCustodian string) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "origintrace",
		Description:           "Trace the custody chain of a Cardano native asset and classify its trips through a custodian.",
		Usage:                 "origintrace [command] [flags]",
		Commands: []*cli.Command{
			traceCommand(ts, defaultCustodian),
			replayCommand(ts, defaultCustodian),
			historyCommand(ts),
			custodianCommand(cr),
		},
	}
}
