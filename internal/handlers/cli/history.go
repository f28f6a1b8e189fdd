package cli

import (
	"context"

	"github.com/gabapcia/origintrace/internal/render"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/urfave/cli/v3"
)

// historyCommand returns the command that prints the stored history of an asset.
//
// Usage example:
//
//	origintrace history --policy-id d5e6bf05... --asset-name SpaceBud3411
func historyCommand(ts tracer.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Print the ownership history stored by a previous trace.",
		Usage:       "Prints a stored history as JSON. Must provide both policy id and asset name.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "policy-id",
				Usage:    "Hex-encoded minting policy id",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "asset-name",
				Usage:    "Human readable asset name",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := tracer.Request{
				PolicyID:  c.String("policy-id"),
				AssetName: c.String("asset-name"),
			}

			history, err := ts.History(ctx, req)
			if err != nil {
				return err
			}

			return render.WriteHistory(c.Root().Writer, history)
		},
	}
}
