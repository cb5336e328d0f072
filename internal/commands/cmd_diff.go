package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/preset"
	"github.com/hay-kot/popwire/internal/printer"
)

type DiffCmd struct {
	flags       *Flags
	sets        []string
	quiet       bool
	changesOnly bool
}

// NewDiffCmd creates a new diff command.
func NewDiffCmd(flags *Flags) *DiffCmd {
	return &DiffCmd{flags: flags}
}

// Register adds the diff command to the application.
func (cmd *DiffCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "diff",
		Usage:     "Compare the wire records of two presets",
		UsageText: "popwire diff [options] <a> <b>",
		Description: `Projects both presets and prints a line diff of their JSON records.
Comparing records rather than files hides formatting and key order
differences that do not reach the engine.

Exits 1 when the records differ.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "template variable as key=value (repeatable)",
				Destination: &cmd.sets,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "print nothing, only set the exit code",
				Destination: &cmd.quiet,
			},
			&cli.BoolFlag{
				Name:        "changes-only",
				Usage:       "omit unchanged lines",
				Destination: &cmd.changesOnly,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DiffCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected two presets\n\nUsage: popwire diff <a> <b>")
	}
	pathA, pathB := c.Args().Get(0), c.Args().Get(1)

	vars, err := presetVars(cmd.flags.Config, cmd.sets)
	if err != nil {
		return err
	}

	a, err := preset.Load(pathA, vars)
	if err != nil {
		return err
	}
	b, err := preset.Load(pathB, vars)
	if err != nil {
		return err
	}

	lines, err := diffRecords(a.Record(), b.Record())
	if err != nil {
		return err
	}

	if !changed(lines) {
		if !cmd.quiet {
			printer.Ctx(ctx).Successf("records are identical")
		}
		return nil
	}

	if !cmd.quiet {
		p := printer.New(c.Root().Writer)
		p.DiffHeader(pathA, pathB)
		for _, l := range lines {
			if cmd.changesOnly && l.Op == ' ' {
				continue
			}
			p.DiffLine(l.Op, l.Text)
		}
	}

	return cli.Exit("", 1)
}
