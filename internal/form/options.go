package form

import (
	"fmt"
	"time"

	"github.com/hay-kot/popwire/pkg/popup"
)

// Options builds popup options from form answers. Unknown names are errors
// so a mistyped --set is not silently dropped.
func Options(values map[string]any) (popup.Options, error) {
	known := make(map[string]bool)
	for _, f := range PresetFields() {
		known[f.Name] = true
	}

	var opts popup.Options
	for name, raw := range values {
		if !known[name] {
			return popup.Options{}, fmt.Errorf("unknown field %q", name)
		}

		if name == "buttons" {
			if err := applyButtons(&opts, raw); err != nil {
				return popup.Options{}, err
			}
			continue
		}

		s, ok := raw.(string)
		if !ok {
			return popup.Options{}, fmt.Errorf("%s: expected a single value", name)
		}
		if err := applyString(&opts, name, s); err != nil {
			return popup.Options{}, err
		}
	}
	return opts, nil
}

func applyString(opts *popup.Options, name, s string) error {
	if s == "" {
		return nil
	}

	switch name {
	case "title":
		opts.Title = s
	case "text":
		opts.Text = s
	case "confirmButtonText":
		opts.ConfirmButtonText = s
	case "icon":
		icon, err := popup.ParseIcon(s)
		if err != nil {
			return err
		}
		opts.Icon = icon
	case "input":
		in, err := popup.ParseInputType(s)
		if err != nil {
			return err
		}
		opts.Input = in
	case "timer":
		if err := validateTimer(s); err != nil {
			return err
		}
		d, _ := time.ParseDuration(s)
		opts.Timer = popup.Duration(d)
	}
	return nil
}

func applyButtons(opts *popup.Options, raw any) error {
	var buttons []string
	switch v := raw.(type) {
	case []string:
		buttons = v
	case string:
		if v != "" {
			buttons = []string{v}
		}
	default:
		return fmt.Errorf("buttons: unexpected value %v", raw)
	}

	valid := []string{ButtonDeny, ButtonCancel, ButtonClose}
	for _, b := range buttons {
		switch b {
		case ButtonDeny:
			opts.ShowDenyButton = popup.Bool(true)
		case ButtonCancel:
			opts.ShowCancelButton = popup.Bool(true)
		case ButtonClose:
			opts.ShowCloseButton = popup.Bool(true)
		default:
			return fmt.Errorf("buttons: unknown button %q (want one of %v)", b, valid)
		}
	}
	return nil
}
