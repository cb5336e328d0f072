package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/lint"
	"github.com/hay-kot/popwire/internal/preset"
	"github.com/hay-kot/popwire/internal/printer"
)

type LintCmd struct {
	flags  *Flags
	format string
	strict bool
	sets   []string
}

// NewLintCmd creates a new lint command.
func NewLintCmd(flags *Flags) *LintCmd {
	return &LintCmd{flags: flags}
}

// Register adds the lint command to the application.
func (cmd *LintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "lint",
		Usage:     "Check presets for option combinations that probably misbehave",
		UsageText: "popwire lint [options] [patterns...]",
		Description: `Loads each preset and reports options the engine accepts but ignores or
resolves in a surprising way, such as inputOptions on a text input or a popup
with no way to close it.

Files that fail to load are reported as failures. Exits 1 when any failure is
found, or any warning with --strict.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "treat warnings as failures",
				Destination: &cmd.strict,
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

// fileReport holds the findings for one preset file.
type fileReport struct {
	Path     string         `json:"path"`
	Preset   string         `json:"preset,omitempty"`
	Findings []lint.Finding `json:"findings"`
}

func (cmd *LintCmd) run(ctx context.Context, c *cli.Command) error {
	patterns, err := presetPatterns(cmd.flags.Config, c.Args().Slice())
	if err != nil {
		return err
	}

	vars, err := presetVars(cmd.flags.Config, cmd.sets)
	if err != nil {
		return err
	}

	paths, err := preset.Expand(patterns)
	if err != nil {
		return err
	}

	reports := lintFiles(paths, vars, lint.DefaultRules())

	var warned, failed int
	for _, r := range reports {
		w, f := lint.Summary(r.Findings)
		warned += w
		failed += f
	}

	if cmd.format == "json" {
		err = cmd.outputJSON(c, reports, warned, failed)
	} else {
		cmd.outputText(ctx, reports, warned, failed)
	}
	if err != nil {
		return err
	}

	if failed > 0 || (cmd.strict && warned > 0) {
		return cli.Exit("", 1)
	}
	return nil
}

// lintFiles loads and lints each path. A file that cannot be loaded yields a
// single failing "decode" finding.
func lintFiles(paths []string, vars map[string]any, rules []lint.Rule) []fileReport {
	reports := make([]fileReport, 0, len(paths))
	for _, path := range paths {
		p, err := preset.Load(path, vars)
		if err != nil {
			reports = append(reports, fileReport{
				Path: path,
				Findings: []lint.Finding{{
					Rule:     "decode",
					Severity: lint.SeverityFail,
					Message:  err.Error(),
				}},
			})
			continue
		}

		findings := lint.Run(p.Options, rules)
		if findings == nil {
			findings = []lint.Finding{}
		}
		reports = append(reports, fileReport{Path: path, Preset: p.Name, Findings: findings})
	}
	return reports
}

func (cmd *LintCmd) outputJSON(c *cli.Command, reports []fileReport, warned, failed int) error {
	out := struct {
		Clean  bool         `json:"clean"`
		Warned int          `json:"warned"`
		Failed int          `json:"failed"`
		Files  []fileReport `json:"files"`
	}{
		Clean:  failed == 0 && warned == 0,
		Warned: warned,
		Failed: failed,
		Files:  reports,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *LintCmd) outputText(ctx context.Context, reports []fileReport, warned, failed int) {
	p := printer.Ctx(ctx)

	for _, r := range reports {
		p.Section(r.Path)

		if len(r.Findings) == 0 {
			p.CheckItem("clean", "")
		}

		for _, f := range r.Findings {
			label := f.Rule
			if f.Field != "" {
				label += " (" + f.Field + ")"
			}
			switch f.Severity {
			case lint.SeverityFail:
				p.FailItem(label, f.Message)
			default:
				p.WarnItem(label, f.Message)
			}
		}

		p.Printf("")
	}

	if failed == 0 && warned == 0 {
		p.Successf("%d preset(s) clean", len(reports))
		return
	}
	p.Printf("Summary: %d preset(s), %d warnings, %d failed", len(reports), warned, failed)
}
