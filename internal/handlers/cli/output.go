package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/origintrace/internal/pkg/logger"
	"github.com/gabapcia/origintrace/internal/render"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/urfave/cli/v3"
)

// outputFlags are shared by every command that produces a custody chain.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "html",
			Usage: "Write the interactive network page to this file (empty to skip)",
			Value: "nx.html",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "Print the owners and their transactions to stdout",
		},
		&cli.StringFlag{
			Name:  "save",
			Usage: "Write the ownership history as JSON to this file",
		},
	}
}

// writeOutputs renders result as requested by the output flags.
func writeOutputs(ctx context.Context, c *cli.Command, heading string, result tracer.Result) error {
	w := c.Root().Writer

	if result.IsEmpty() {
		logger.Info(ctx, "nothing to render")
		_, err := fmt.Fprintln(w, "No ownership history found.")
		return err
	}

	if c.Bool("print") {
		if err := render.WriteReport(w, result.History); err != nil {
			return err
		}
	}

	if path := c.String("save"); path != "" {
		if err := writeFile(path, func(f *os.File) error { return render.WriteHistory(f, result.History) }); err != nil {
			return err
		}
		logger.Info(ctx, "history written", "path", path)
	}

	if path := c.String("html"); path != "" {
		doc := render.NewDocument(heading, result.Graph)
		if err := writeFile(path, func(f *os.File) error { return render.WriteHTML(f, doc) }); err != nil {
			return err
		}
		logger.Info(ctx, "network page written", "path", path)
	}

	return nil
}

// writeFile creates path and fills it with write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
