package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/popwire/internal/interop"
	"github.com/hay-kot/popwire/pkg/popup"
)

// action is how a simulated user closes a popup.
type action struct {
	kind   string // confirm, deny or dismiss
	value  string
	reason popup.DismissReason
}

// lifecycleReport describes one simulated popup run.
type lifecycleReport struct {
	PopupID  string        `json:"popupId" yaml:"popupId"`
	Surface  string        `json:"surface" yaml:"surface"`
	Events   []string      `json:"events" yaml:"events"`
	Rejected string        `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Vetoed   bool          `json:"vetoed,omitempty" yaml:"vetoed,omitempty"`
	Result   *popup.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Record   popup.Record  `json:"options" yaml:"options"`
}

// simulate fires opts on reg and drives it the way the engine would: open
// events, the user's action, then close events. A rejected input or a vetoed
// gate skips straight to didDestroy, as when the host tears the popup down.
func simulate(ctx context.Context, reg *interop.Registry, surface string, opts popup.Options, act action) (lifecycleReport, error) {
	env := reg.Fire(surface, interop.WithBuiltinValidator(opts))
	report := lifecycleReport{PopupID: env.PopupID, Surface: surface, Record: env.Options}

	dispatch := func(events ...interop.Event) error {
		for _, ev := range events {
			if err := reg.Dispatch(ctx, env.PopupID, ev); err != nil {
				return err
			}
			report.Events = append(report.Events, ev.String())
		}
		return nil
	}
	teardown := func() (lifecycleReport, error) {
		err := dispatch(interop.EventDidDestroy)
		return report, err
	}

	if err := dispatch(interop.EventWillOpen, interop.EventDidOpen, interop.EventDidRender); err != nil {
		_, _ = teardown()
		return report, err
	}

	var value any
	if opts.Input.IsSet() {
		value = act.value
	}

	var (
		outcome interop.Outcome
		err     error
	)
	switch act.kind {
	case "confirm":
		if opts.Input.IsSet() {
			msg, verr := reg.Validate(ctx, env.PopupID, act.value)
			if verr != nil {
				_, _ = teardown()
				return report, verr
			}
			if msg != "" {
				report.Rejected = msg
				return teardown()
			}
		}
		outcome, err = reg.Confirm(ctx, env.PopupID, value)
	case "deny":
		outcome, err = reg.Deny(ctx, env.PopupID, value)
	case "dismiss":
		outcome.Result, err = reg.Dismiss(env.PopupID, act.reason)
	default:
		err = fmt.Errorf("unknown action %q", act.kind)
	}
	if err != nil {
		_, _ = teardown()
		return report, err
	}

	if outcome.Vetoed {
		report.Vetoed = true
		return teardown()
	}

	res := outcome.Result
	report.Result = &res

	if err := dispatch(interop.EventWillClose, interop.EventDidClose); err != nil {
		_, _ = teardown()
		return report, err
	}
	return teardown()
}
