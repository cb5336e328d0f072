package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popwire/internal/core/journal"
	"github.com/hay-kot/popwire/internal/core/validate"
	"github.com/hay-kot/popwire/internal/preset"
	"github.com/hay-kot/popwire/pkg/popup"
)

type ResolveCmd struct {
	flags   *Flags
	confirm bool
	deny    bool
	dismiss string
	value   string
	surface string
	sets    []string
}

// NewResolveCmd creates a new resolve command.
func NewResolveCmd(flags *Flags) *ResolveCmd {
	return &ResolveCmd{flags: flags}
}

// Register adds the resolve command to the application.
func (cmd *ResolveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resolve",
		Usage:     "Run a preset through a simulated popup lifecycle",
		UsageText: "popwire resolve [options] <preset>",
		Description: `Fires the preset, replays the engine's lifecycle events and closes it the
way a user would, then prints the popup result the host would receive.

Exactly one of --confirm, --deny or --dismiss is required. --value is the
input value for popups with an input; email and url inputs are checked with
the built-in validators.

Example:
  popwire resolve --confirm --value ada@example.com presets/signup.yaml
  popwire resolve --dismiss esc presets/confirm.yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "confirm",
				Usage:       "press the confirm button",
				Destination: &cmd.confirm,
			},
			&cli.BoolFlag{
				Name:        "deny",
				Usage:       "press the deny button",
				Destination: &cmd.deny,
			},
			&cli.StringFlag{
				Name:        "dismiss",
				Usage:       "dismiss with a reason (cancel, backdrop, close, esc, timer)",
				Destination: &cmd.dismiss,
			},
			&cli.StringFlag{
				Name:        "value",
				Usage:       "input value entered before closing",
				Destination: &cmd.value,
			},
			&cli.StringFlag{
				Name:        "surface",
				Usage:       "surface to fire on (defaults to the preset name)",
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

func (cmd *ResolveCmd) action() (action, error) {
	chosen := 0
	var act action
	if cmd.confirm {
		chosen++
		act.kind = "confirm"
	}
	if cmd.deny {
		chosen++
		act.kind = "deny"
	}
	if cmd.dismiss != "" {
		chosen++
		reason, err := popup.ParseDismissReason(cmd.dismiss)
		if err != nil {
			return action{}, err
		}
		act.kind, act.reason = "dismiss", reason
	}
	if chosen != 1 {
		return action{}, fmt.Errorf("exactly one of --confirm, --deny or --dismiss is required")
	}
	act.value = cmd.value
	return act, nil
}

func (cmd *ResolveCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("preset required\n\nUsage: popwire resolve [options] <preset>")
	}

	act, err := cmd.action()
	if err != nil {
		return err
	}

	if cmd.flags.Registry == nil {
		return fmt.Errorf("interop registry not initialized")
	}

	vars, err := presetVars(cmd.flags.Config, cmd.sets)
	if err != nil {
		return err
	}

	p, err := preset.Load(c.Args().First(), vars)
	if err != nil {
		return err
	}

	surface := cmd.surface
	if surface == "" {
		surface = p.Name
	}
	if err := validate.Surface(surface); err != nil {
		return err
	}

	report, err := simulate(ctx, cmd.flags.Registry, surface, p.Options, act)
	if err != nil {
		return err
	}

	log.Debug().
		Str("popup", report.PopupID).
		Int("held", cmd.flags.Registry.Len()).
		Msg("lifecycle complete")

	if cmd.flags.Journal != nil {
		entry := journal.Entry{
			ID:        report.PopupID,
			Preset:    p.Name,
			Surface:   report.Surface,
			Action:    act.kind,
			Events:    report.Events,
			Result:    report.Result,
			Rejected:  report.Rejected,
			Vetoed:    report.Vetoed,
			Timestamp: time.Now(),
		}
		if err := cmd.flags.Journal.Save(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("failed to record journal entry")
		}
	}

	format, indent := outputSettings(cmd.flags.Config, "")
	if err := encode(c.Root().Writer, format, indent, report); err != nil {
		return err
	}

	if report.Rejected != "" || report.Vetoed {
		return cli.Exit("", 1)
	}
	return nil
}
