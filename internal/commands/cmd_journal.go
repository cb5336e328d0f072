package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/core/journal"
	"github.com/hay-kot/popwire/internal/printer"
)

type JournalCmd struct {
	flags *Flags

	// Command-specific flags
	clear      bool
	lastFailed bool
	format     string
}

// NewJournalCmd creates a new journal command
func NewJournalCmd(flags *Flags) *JournalCmd {
	return &JournalCmd{flags: flags}
}

// Register adds the journal command to the application
func (cmd *JournalCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "journal",
		Usage:     "View or manage recorded popup runs",
		UsageText: "popwire journal [options] [popup-id]",
		Description: `View or manage the runs recorded by 'resolve'.

By default, lists recent runs with their popup IDs, preset, outcome and
timestamp. Pass a popup ID to print that run in full.
Use --clear to remove all entries.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "clear",
				Aliases:     []string{"c"},
				Usage:       "clear the journal",
				Destination: &cmd.clear,
			},
			&cli.BoolFlag{
				Name:        "last-failed",
				Usage:       "print the most recent run that stayed open",
				Destination: &cmd.lastFailed,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *JournalCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Journal == nil {
		return fmt.Errorf("journal not initialized")
	}

	switch {
	case cmd.clear:
		return cmd.runClear(ctx, printer.Ctx(ctx))
	case cmd.lastFailed:
		entry, err := cmd.flags.Journal.LastFailed(ctx)
		if errors.Is(err, journal.ErrNotFound) {
			printer.Ctx(ctx).Infof("No failed runs")
			return nil
		}
		if err != nil {
			return fmt.Errorf("last failed run: %w", err)
		}
		return cmd.printEntry(c, entry)
	case c.Args().Len() > 0:
		entry, err := cmd.flags.Journal.Get(ctx, c.Args().First())
		if err != nil {
			return fmt.Errorf("get journal entry: %w", err)
		}
		return cmd.printEntry(c, entry)
	}

	return cmd.runList(ctx, c)
}

func (cmd *JournalCmd) runList(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.Journal.List(ctx)
	if err != nil {
		return fmt.Errorf("list journal: %w", err)
	}

	if cmd.format == "json" {
		if entries == nil {
			entries = []journal.Entry{}
		}
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		printer.Ctx(ctx).Infof("No recorded runs")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "POPUP\tPRESET\tACTION\tOUTCOME\tTIME")

	for _, e := range entries {
		status := printer.StatusOK() + " " + e.Outcome()
		if e.Failed() {
			status = printer.StatusFailed(e.Outcome())
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Preset,
			e.Action,
			status,
			e.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

func (cmd *JournalCmd) printEntry(c *cli.Command, entry journal.Entry) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(entry)
}

func (cmd *JournalCmd) runClear(ctx context.Context, p *printer.Printer) error {
	if err := cmd.flags.Journal.Clear(ctx); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}

	p.Successf("Journal cleared")
	return nil
}
