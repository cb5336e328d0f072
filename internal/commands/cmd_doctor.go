package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/commands/doctor"
	"github.com/hay-kot/popwire/internal/core/config"
	"github.com/hay-kot/popwire/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
	sets   []string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "doctor",
		Usage:     "Check the configuration and every configured preset",
		UsageText: "popwire doctor [options]",
		Description: `Loads the configuration and each preset matched by presets.patterns, then
reports duplicate preset names and lint findings. Exits 1 when any check fails.

Example:
  popwire doctor
  popwire doctor --set product=Acme --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, yaml)",
				Value:       "text",
				Destination: &cmd.format,
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

type doctorReport struct {
	Healthy bool            `json:"healthy" yaml:"healthy"`
	Passed  int             `json:"passed" yaml:"passed"`
	Warned  int             `json:"warned" yaml:"warned"`
	Failed  int             `json:"failed" yaml:"failed"`
	Checks  []doctor.Result `json:"checks" yaml:"checks"`
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	vars, err := presetVars(cmd.flags.Config, cmd.sets)
	if err != nil {
		return err
	}

	var patterns []string
	if cmd.flags.Config != nil {
		patterns = cmd.flags.Config.Presets.Patterns
	}

	results := doctor.RunAll(ctx, []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		doctor.NewPresetsCheck(patterns, vars),
	})
	passed, warned, failed := doctor.Summary(results)

	switch cmd.format {
	case config.FormatJSON, config.FormatYAML:
		_, indent := outputSettings(cmd.flags.Config, cmd.format)
		report := doctorReport{
			Healthy: failed == 0,
			Passed:  passed,
			Warned:  warned,
			Failed:  failed,
			Checks:  results,
		}
		if err := encode(c.Root().Writer, cmd.format, indent, report); err != nil {
			return err
		}
	default:
		p := printer.Ctx(ctx)
		for _, result := range results {
			p.Section(result.Name)
			printItems(p, result.Items)
			p.Printf("")
		}
		p.Printf("Summary: %d passed, %d warnings, %d failed", passed, warned, failed)
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func printItems(p *printer.Printer, items []doctor.CheckItem) {
	for _, item := range items {
		switch item.Status {
		case doctor.StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case doctor.StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case doctor.StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}
}
