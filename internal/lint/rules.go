package lint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hay-kot/popwire/pkg/popup"
)

// InputRule reports input settings that the chosen input kind ignores.
type InputRule struct{}

func (InputRule) Name() string { return "input" }

func (r InputRule) Check(o popup.Options) []Finding {
	var out []Finding
	warn := func(field, msg string) {
		out = append(out, Finding{Rule: r.Name(), Field: field, Severity: SeverityWarn, Message: msg})
	}

	if o.InputOptions != nil && o.InputOptions.Len() > 0 && !o.Input.UsesOptions() {
		warn("inputOptions", fmt.Sprintf("ignored unless input is select or radio (input is %q)", o.Input))
	}
	if o.Input.UsesOptions() && (o.InputOptions == nil || o.InputOptions.Len() == 0) {
		warn("inputOptions", fmt.Sprintf("%s input has no options", o.Input))
	}

	if o.Input.IsSet() {
		return out
	}
	if len(o.InputAttributes) > 0 {
		warn("inputAttributes", "set without an input")
	}
	if o.InputPlaceholder != "" {
		warn("inputPlaceholder", "set without an input")
	}
	if o.InputLabel != "" {
		warn("inputLabel", "set without an input")
	}
	if o.InputValue != "" {
		warn("inputValue", "set without an input")
	}
	if isTrue(o.ReturnInputValueOnDeny) {
		warn("returnInputValueOnDeny", "set without an input")
	}
	return out
}

// ContentRule reports text and html both being set.
type ContentRule struct{}

func (ContentRule) Name() string { return "content" }

func (r ContentRule) Check(o popup.Options) []Finding {
	if o.Text != "" && o.HTML != "" {
		return []Finding{{
			Rule:     r.Name(),
			Field:    "html",
			Severity: SeverityWarn,
			Message:  "text and html are both set; the engine shows text and ignores html",
		}}
	}
	return nil
}

// FocusRule reports more than one button asking for initial focus.
type FocusRule struct{}

func (FocusRule) Name() string { return "focus" }

func (r FocusRule) Check(o popup.Options) []Finding {
	var set []string
	if isTrue(o.FocusConfirm) {
		set = append(set, "focusConfirm")
	}
	if isTrue(o.FocusDeny) {
		set = append(set, "focusDeny")
	}
	if isTrue(o.FocusCancel) {
		set = append(set, "focusCancel")
	}
	if len(set) < 2 {
		return nil
	}
	return []Finding{{
		Rule:     r.Name(),
		Field:    set[1],
		Severity: SeverityWarn,
		Message:  fmt.Sprintf("%v all request focus; only one button can have it", set),
	}}
}

// ProgressRule checks the current progress step against the step list. The
// engine reads currentProgressStep as a zero-based index into progressSteps.
type ProgressRule struct{}

func (ProgressRule) Name() string { return "progress" }

func (r ProgressRule) Check(o popup.Options) []Finding {
	if o.CurrentProgressStep == "" {
		return nil
	}
	finding := func(sev Severity, msg string) []Finding {
		return []Finding{{Rule: r.Name(), Field: "currentProgressStep", Severity: sev, Message: msg}}
	}

	if len(o.ProgressSteps) == 0 {
		return finding(SeverityWarn, "set without progressSteps")
	}

	idx, err := strconv.Atoi(strings.TrimSpace(o.CurrentProgressStep))
	if err != nil {
		return finding(SeverityFail, fmt.Sprintf("%q is not a step index", o.CurrentProgressStep))
	}
	if idx < 0 || idx >= len(o.ProgressSteps) {
		return finding(SeverityFail, fmt.Sprintf("index %d is outside progressSteps %v (0 to %d)", idx, o.ProgressSteps, len(o.ProgressSteps)-1))
	}
	return nil
}

// TimerRule checks the auto-close timer.
type TimerRule struct{}

func (TimerRule) Name() string { return "timer" }

func (r TimerRule) Check(o popup.Options) []Finding {
	if o.Timer == nil {
		if isTrue(o.TimerProgressBar) {
			return []Finding{{
				Rule:     r.Name(),
				Field:    "timerProgressBar",
				Severity: SeverityWarn,
				Message:  "progress bar has no timer to track",
			}}
		}
		return nil
	}
	if o.Timer.Milliseconds() <= 0 {
		return []Finding{{
			Rule:     r.Name(),
			Field:    "timer",
			Severity: SeverityFail,
			Message:  fmt.Sprintf("must be at least 1ms, got %s", o.Timer),
		}}
	}
	return nil
}

// ImageRule reports image settings without an image.
type ImageRule struct{}

func (ImageRule) Name() string { return "image" }

func (r ImageRule) Check(o popup.Options) []Finding {
	if o.ImageURL != "" {
		return nil
	}
	var out []Finding
	for field, set := range map[string]bool{
		"imageWidth":  o.ImageWidth != nil,
		"imageHeight": o.ImageHeight != nil,
		"imageAlt":    o.ImageAlt != "",
	} {
		if set {
			out = append(out, Finding{Rule: r.Name(), Field: field, Severity: SeverityWarn, Message: "set without imageUrl"})
		}
	}
	return out
}

// ToastRule reports settings toasts do not support.
type ToastRule struct{}

func (ToastRule) Name() string { return "toast" }

func (r ToastRule) Check(o popup.Options) []Finding {
	if !isTrue(o.Toast) {
		return nil
	}
	var out []Finding
	if o.Grow.IsSet() {
		out = append(out, Finding{Rule: r.Name(), Field: "grow", Severity: SeverityWarn, Message: "grow has no effect on toasts"})
	}
	if isTrue(o.Backdrop) {
		out = append(out, Finding{Rule: r.Name(), Field: "backdrop", Severity: SeverityWarn, Message: "toasts never show a backdrop"})
	}
	return out
}

// CloseRule fails popups the user has no way to close.
type CloseRule struct{}

func (CloseRule) Name() string { return "close" }

func (r CloseRule) Check(o popup.Options) []Finding {
	hasButton := !isFalse(o.ShowConfirmButton) ||
		isTrue(o.ShowDenyButton) ||
		isTrue(o.ShowCancelButton) ||
		isTrue(o.ShowCloseButton)
	if hasButton || o.Timer != nil {
		return nil
	}
	if !isFalse(o.AllowOutsideClick) || !isFalse(o.AllowEscapeKey) {
		return nil
	}
	return []Finding{{
		Rule:     r.Name(),
		Field:    "showConfirmButton",
		Severity: SeverityFail,
		Message:  "no button, no timer and outside click and escape are disabled; the popup cannot be closed",
	}}
}
