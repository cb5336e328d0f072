package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hay-kot/popwire/internal/core/validate"
	"github.com/hay-kot/popwire/internal/preset"
	"github.com/hay-kot/popwire/pkg/popup"
)

type ProjectCmd struct {
	flags    *Flags
	format   string
	envelope bool
	surface  string
	sets     []string
}

// NewProjectCmd creates a new project command.
func NewProjectCmd(flags *Flags) *ProjectCmd {
	return &ProjectCmd{flags: flags}
}

// Register adds the project command to the application.
func (cmd *ProjectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "project",
		Usage:     "Print the wire records for presets",
		UsageText: "popwire project [options] [patterns...]",
		Description: `Loads presets and prints their projected wire records. Callbacks are
reported as booleans and enums as their engine names.

With no patterns the configured presets.patterns are used. A single preset
prints one record; several print an object keyed by preset name.

With --envelope each record is wrapped with a fresh popup ID and the
contract version, ready to hand to the engine host.

Example:
  popwire project presets/confirm.yaml
  popwire project --format yaml --set brand=acme 'presets/**/*.yaml'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (json, yaml); defaults to output.format",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "envelope",
				Aliases:     []string{"e"},
				Usage:       "wrap each record in a versioned envelope",
				Destination: &cmd.envelope,
			},
			&cli.StringFlag{
				Name:        "surface",
				Usage:       "envelope surface (defaults to the preset name)",
				Destination: &cmd.surface,
			},
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "template variable as key=value (repeatable)",
				Destination: &cmd.sets,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ProjectCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.surface != "" {
		if err := validate.Surface(cmd.surface); err != nil {
			return err
		}
	}

	presets, err := loadPresets(ctx, cmd.flags.Config, c.Args().Slice(), cmd.sets)
	if err != nil {
		return err
	}

	log.Debug().Int("count", len(presets)).Msg("projecting presets")

	format, indent := outputSettings(cmd.flags.Config, cmd.format)

	if len(presets) == 1 {
		return encode(c.Root().Writer, format, indent, cmd.output(presets[0]))
	}

	out := orderedmap.New[string, any]()
	for _, p := range presets {
		out.Set(p.Name, cmd.output(p))
	}
	return encode(c.Root().Writer, format, indent, out)
}

func (cmd *ProjectCmd) output(p preset.Preset) any {
	if !cmd.envelope {
		return p.Record()
	}

	surface := cmd.surface
	if surface == "" {
		surface = p.Name
	}

	var env popup.Envelope
	if cmd.flags.Registry != nil {
		env = cmd.flags.Registry.Fire(surface, p.Options)
	} else {
		env = popup.Wrap("", surface, p.Record())
	}
	return env
}
