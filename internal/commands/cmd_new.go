package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/form"
	"github.com/hay-kot/popwire/internal/lint"
	"github.com/hay-kot/popwire/internal/preset"
	"github.com/hay-kot/popwire/internal/printer"
)

type NewCmd struct {
	flags *Flags
	sets  []string
	force bool
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a preset interactively",
		UsageText: "popwire new [options] <path.yaml>",
		Description: `Asks for the common popup options and writes them as a YAML preset.

Answers can be given up front with --set. When every required answer is
given the form is skipped, which also allows running without a terminal.

Example:
  popwire new presets/delete.yaml
  popwire new --set title="Delete file?" --set icon=warning --set buttons=cancel presets/delete.yaml`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "answer as name=value; buttons takes a comma list (repeatable)",
				Destination: &cmd.sets,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing preset",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if c.Args().Len() != 1 {
		return fmt.Errorf("preset path required\n\nUsage: popwire new <path.yaml>")
	}
	path := c.Args().First()

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	prefilled, err := form.ParseSetValues(cmd.sets)
	if err != nil {
		return err
	}

	fields := form.PresetFields()
	values := prefilled
	if !form.AllFieldsPrefilled(fields, prefilled) {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("stdin is not a terminal: pass every required answer with --set")
		}
		values, err = form.Run(fields, prefilled)
		if err != nil {
			return fmt.Errorf("preset form: %w", err)
		}
	}

	if err := form.ValidateRequiredFields(fields, values); err != nil {
		return err
	}

	opts, err := form.Options(values)
	if err != nil {
		return err
	}

	if err := preset.Write(path, opts); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}

	p.Success("Preset created", path)
	for _, f := range lint.Run(opts, lint.DefaultRules()) {
		p.WarnItem(f.Rule+" ("+f.Field+")", f.Message)
	}
	return nil
}
