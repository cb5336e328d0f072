package commands

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/commands/doctor"
	"github.com/hay-kot/popwire/internal/core/config"
	"github.com/hay-kot/popwire/internal/printer"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command and its subcommands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect and validate the configuration",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate the configuration file",
				UsageText: "popwire config validate [options]",
				Description: `Checks interop durations, preset glob patterns, template variable names,
output settings and the journal location. Exits 1 on any error.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json, yaml)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.validate,
			},
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "popwire config show",
				Description: "Prints the configuration after defaults are applied, as YAML.",
				Action:      cmd.show,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) show(_ context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	_, indent := outputSettings(cmd.flags.Config, config.FormatYAML)
	return encode(c.Root().Writer, config.FormatYAML, indent, cmd.flags.Config)
}

type validateReport struct {
	Valid    bool                       `json:"valid" yaml:"valid"`
	Errors   []doctor.CheckItem         `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (cmd *ConfigCmd) validate(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	report := validateReport{Warnings: cmd.flags.Config.Warnings()}
	for _, fe := range extractFieldErrors(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)) {
		report.Errors = append(report.Errors, doctor.CheckItem{
			Label:  cmp.Or(fe.Field, "config"),
			Status: doctor.StatusFail,
			Detail: fe.Err.Error(),
		})
	}
	report.Valid = len(report.Errors) == 0

	switch cmd.format {
	case config.FormatJSON, config.FormatYAML:
		_, indent := outputSettings(cmd.flags.Config, cmd.format)
		if err := encode(c.Root().Writer, cmd.format, indent, report); err != nil {
			return err
		}
	default:
		cmd.printReport(printer.Ctx(ctx), report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// extractFieldErrors flattens err into field errors. Errors that carry no
// field come back as a single entry with an empty Field.
func extractFieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

func (cmd *ConfigCmd) printReport(p *printer.Printer, report validateReport) {
	if len(report.Errors) > 0 {
		p.Section("Errors")
		printItems(p, report.Errors)
		p.Printf("")
	}

	if len(report.Warnings) > 0 {
		p.Section("Warnings")
		for _, warn := range report.Warnings {
			label := warn.Category
			if warn.Item != "" {
				label += " (" + warn.Item + ")"
			}
			p.WarnItem(label, warn.Message)
		}
		p.Printf("")
	}

	switch {
	case !report.Valid:
		p.Errorf("%d error(s), %d warning(s)", len(report.Errors), len(report.Warnings))
	case len(report.Warnings) > 0:
		p.Successf("Configuration is valid (%d warning(s))", len(report.Warnings))
	default:
		p.Successf("Configuration is valid")
	}
}
