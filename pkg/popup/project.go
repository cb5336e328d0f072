package popup

import (
	"maps"
	"slices"
)

// Project converts o into its wire Record. It is pure: it reads o, allocates
// the result and touches nothing else. Enums become engine literals (absent
// when Unset), callbacks become presence flags, and every other field is
// copied as is. Collections are cloned, so mutating o afterwards never shows
// through the Record. Project invents no defaults and leaves the Text/HTML
// precedence to the engine.
//
// The caller must not mutate o while Project runs.
func Project(o Options) Record {
	return Record{
		Title:     o.Title,
		TitleText: o.TitleText,
		Text:      o.Text,
		HTML:      o.HTML,
		Footer:    o.Footer,
		Icon:      o.Icon.String(),
		IconColor: o.IconColor,
		IconHTML:  o.IconHTML,
		Backdrop:  cloneBool(o.Backdrop),
		Toast:     cloneBool(o.Toast),
		Target:    o.Target,
		Input:     o.Input.String(),

		Width:       o.Width,
		Padding:     o.Padding,
		Color:       o.Color,
		Background:  o.Background,
		Position:    o.Position.String(),
		Grow:        o.Grow.String(),
		ShowClass:   clonePtr(o.ShowClass),
		HideClass:   clonePtr(o.HideClass),
		CustomClass: clonePtr(o.CustomClass),

		Timer:                  millis(o),
		TimerProgressBar:       cloneBool(o.TimerProgressBar),
		HeightAuto:             cloneBool(o.HeightAuto),
		AllowOutsideClick:      cloneBool(o.AllowOutsideClick),
		AllowEscapeKey:         cloneBool(o.AllowEscapeKey),
		AllowEnterKey:          cloneBool(o.AllowEnterKey),
		StopKeydownPropagation: cloneBool(o.StopKeydownPropagation),
		KeydownListenerCapture: cloneBool(o.KeydownListenerCapture),

		ShowConfirmButton:      cloneBool(o.ShowConfirmButton),
		ShowDenyButton:         cloneBool(o.ShowDenyButton),
		ShowCancelButton:       cloneBool(o.ShowCancelButton),
		ConfirmButtonText:      o.ConfirmButtonText,
		DenyButtonText:         o.DenyButtonText,
		CancelButtonText:       o.CancelButtonText,
		ConfirmButtonColor:     o.ConfirmButtonColor,
		DenyButtonColor:        o.DenyButtonColor,
		CancelButtonColor:      o.CancelButtonColor,
		ConfirmButtonAriaLabel: o.ConfirmButtonAriaLabel,
		DenyButtonAriaLabel:    o.DenyButtonAriaLabel,
		CancelButtonAriaLabel:  o.CancelButtonAriaLabel,
		ButtonsStyling:         cloneBool(o.ButtonsStyling),
		ReverseButtons:         cloneBool(o.ReverseButtons),
		FocusConfirm:           cloneBool(o.FocusConfirm),
		FocusDeny:              cloneBool(o.FocusDeny),
		FocusCancel:            cloneBool(o.FocusCancel),
		ReturnFocus:            cloneBool(o.ReturnFocus),
		ShowCloseButton:        cloneBool(o.ShowCloseButton),
		CloseButtonHTML:        o.CloseButtonHTML,
		CloseButtonAriaLabel:   o.CloseButtonAriaLabel,
		LoaderHTML:             o.LoaderHTML,
		ShowLoaderOnConfirm:    cloneBool(o.ShowLoaderOnConfirm),
		ShowLoaderOnDeny:       cloneBool(o.ShowLoaderOnDeny),
		PreConfirm:             o.PreConfirm != nil,
		PreDeny:                o.PreDeny != nil,

		ImageURL:    o.ImageURL,
		ImageWidth:  clonePtr(o.ImageWidth),
		ImageHeight: clonePtr(o.ImageHeight),
		ImageAlt:    o.ImageAlt,

		InputLabel:             o.InputLabel,
		InputPlaceholder:       o.InputPlaceholder,
		InputValue:             o.InputValue,
		InputOptions:           cloneChoices(o.InputOptions),
		InputAutoTrim:          cloneBool(o.InputAutoTrim),
		InputAttributes:        maps.Clone(o.InputAttributes),
		InputValidator:         o.InputValidator != nil,
		ReturnInputValueOnDeny: cloneBool(o.ReturnInputValueOnDeny),
		ValidationMessage:      o.ValidationMessage,

		ProgressSteps:         slices.Clone(o.ProgressSteps),
		CurrentProgressStep:   o.CurrentProgressStep,
		ProgressStepsDistance: o.ProgressStepsDistance,

		WillOpen:   o.WillOpen != nil,
		DidOpen:    o.DidOpen != nil,
		WillClose:  o.WillClose != nil,
		DidClose:   o.DidClose != nil,
		DidDestroy: o.DidDestroy != nil,
		DidRender:  o.DidRender != nil,

		ScrollbarPadding: cloneBool(o.ScrollbarPadding),
	}
}

func millis(o Options) *int64 {
	if o.Timer == nil {
		return nil
	}
	ms := o.Timer.Milliseconds()
	return &ms
}

func cloneBool(b *bool) *bool { return clonePtr(b) }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneChoices copies c pair by pair from oldest to newest.
func cloneChoices(c *Choices) *Choices {
	if c == nil {
		return nil
	}
	out := NewChoices()
	for pair := c.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return out
}
