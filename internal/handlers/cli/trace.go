package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gabapcia/origintrace/internal/provenance"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/urfave/cli/v3"
)

// traceCommand returns the command that traces an asset on the ledger.
//
// Usage example:
//
//	origintrace trace --policy-id d5e6bf05... --asset-name SpaceBud3411 --print
func traceCommand(ts tracer.Service, defaultCustodian string) *cli.Command {
	return &cli.Command{
		Name:        "trace",
		Description: "Rebuild the custody chain of an asset from the ledger and classify its custody round trips.",
		Usage:       "Traces an asset. Must provide both policy id and asset name.",
		Flags: append([]cli.Flag{
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
			&cli.StringFlag{
				Name:  "custodian",
				Usage: "Custodian address or registered alias (empty to disable)",
				Value: defaultCustodian,
			},
		}, outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			req := tracer.Request{
				PolicyID:  c.String("policy-id"),
				AssetName: c.String("asset-name"),
				Custodian: c.String("custodian"),
			}

			result, err := ts.Trace(ctx, req)
			if err != nil {
				return err
			}

			return writeOutputs(ctx, c, req.PolicyID+"."+req.AssetName, result)
		},
	}
}

// replayCommand returns the command that rebuilds a chain from a saved history.
//
// Usage example:
//
//	origintrace replay --file cnft_history.json --custodian tokhun
func replayCommand(ts tracer.Service, defaultCustodian string) *cli.Command {
	return &cli.Command{
		Name:        "replay",
		Description: "Rebuild the custody chain from a history file written by trace --save.",
		Usage:       "Replays a saved history without querying the ledger.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "History JSON file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "custodian",
				Usage: "Custodian address or registered alias (empty to disable)",
				Value: defaultCustodian,
			},
		}, outputFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.String("file")

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var history provenance.History
			if err := json.Unmarshal(data, &history); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			result, err := ts.Replay(ctx, history, c.String("custodian"))
			if err != nil {
				return err
			}

			return writeOutputs(ctx, c, path, result)
		},
	}
}
