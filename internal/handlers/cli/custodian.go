package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/origintrace/internal/custodianregistry"

	"github.com/urfave/cli/v3"
)

// custodianCommand groups the custodian alias commands.
func custodianCommand(cr custodianregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "custodian",
		Description: "Manage named custodian addresses.",
		Usage:       "Adds, removes, or lists custodian aliases.",
		Commands: []*cli.Command{
			addCustodianCommand(cr),
			removeCustodianCommand(cr),
			listCustodiansCommand(cr),
		},
	}
}

// addCustodianCommand registers an alias.
//
// Usage example:
//
//	origintrace custodian add --name tokhun --address addr1wyl5...
func addCustodianCommand(cr custodianregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "add",
		Description: "Register a name for a custodian address.",
		Usage:       "Registers a custodian alias. Must provide both name and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Alias to register",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Custodian address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				name    = c.String("name")
				address = c.String("address")
			)

			return cr.Register(ctx, name, address)
		},
	}
}

// removeCustodianCommand removes an alias.
//
// Usage example:
//
//	origintrace custodian remove --name tokhun
func removeCustodianCommand(cr custodianregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "remove",
		Description: "Remove a custodian alias.",
		Usage:       "Removes a custodian alias by name.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Alias to remove",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return cr.Unregister(ctx, c.String("name"))
		},
	}
}

// listCustodiansCommand prints every alias as "name<TAB>address".
func listCustodiansCommand(cr custodianregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List registered custodian aliases.",
		Usage:       "Prints every alias and its address.",
		Action: func(ctx context.Context, c *cli.Command) error {
			custodians, err := cr.List(ctx)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			for _, custodian := range custodians {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", custodian.Name, custodian.Address); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
