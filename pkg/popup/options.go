package popup

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Choices maps input option values to their display text. Insertion order is
// the order the engine lists select and radio choices in.
type Choices = orderedmap.OrderedMap[string, string]

// NewChoices builds Choices from value/label pairs, keeping their order.
func NewChoices(pairs ...[2]string) *Choices {
	c := orderedmap.New[string, string]()
	for _, p := range pairs {
		c.Set(p[0], p[1])
	}
	return c
}

// Options describes one popup. Every field is optional: empty strings, nil
// pointers, nil collections and Unset enums all mean "use the engine
// default". Options does no validation; the engine decides what a combination
// of fields means.
//
// YAML and JSON keys are the engine's option names and the timer is in
// milliseconds, so engine-shaped JSON decodes directly. Hooks are never decoded.
type Options struct {
	// Title of the popup, as HTML.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// TitleText is the title as plain text.
	TitleText string `json:"titleText,omitempty" yaml:"titleText,omitempty"`
	// Text is the plain text description. When both Text and HTML are set
	// the engine shows Text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// HTML is the description as HTML.
	HTML   string `json:"html,omitempty" yaml:"html,omitempty"`
	Footer string `json:"footer,omitempty" yaml:"footer,omitempty"`

	Icon      Icon   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconColor string `json:"iconColor,omitempty" yaml:"iconColor,omitempty"`
	IconHTML  string `json:"iconHtml,omitempty" yaml:"iconHtml,omitempty"`

	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ImageWidth  *float64 `json:"imageWidth,omitempty" yaml:"imageWidth,omitempty"`
	ImageHeight *float64 `json:"imageHeight,omitempty" yaml:"imageHeight,omitempty"`
	ImageAlt    string   `json:"imageAlt,omitempty" yaml:"imageAlt,omitempty"`

	// Backdrop shows a full screen click-to-dismiss backdrop.
	Backdrop *bool `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	// Toast renders the popup as a toast notification.
	Toast *bool `json:"toast,omitempty" yaml:"toast,omitempty"`
	// Target is a query selector for the container the popup is added to.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	Width            string         `json:"width,omitempty" yaml:"width,omitempty"`
	Padding          string         `json:"padding,omitempty" yaml:"padding,omitempty"`
	Color            string         `json:"color,omitempty" yaml:"color,omitempty"`
	Background       string         `json:"background,omitempty" yaml:"background,omitempty"`
	Position         Position       `json:"position,omitempty" yaml:"position,omitempty"`
	Grow             GrowDirection  `json:"grow,omitempty" yaml:"grow,omitempty"`
	ShowClass        *ShowClass     `json:"showClass,omitempty" yaml:"showClass,omitempty"`
	HideClass        *HideClass     `json:"hideClass,omitempty" yaml:"hideClass,omitempty"`
	CustomClass      *CustomClass   `json:"customClass,omitempty" yaml:"customClass,omitempty"`
	HeightAuto       *bool          `json:"heightAuto,omitempty" yaml:"heightAuto,omitempty"`
	ScrollbarPadding *bool          `json:"scrollbarPadding,omitempty" yaml:"scrollbarPadding,omitempty"`
	Timer            *Millis        `json:"timer,omitempty" yaml:"timer,omitempty"`
	TimerProgressBar *bool          `json:"timerProgressBar,omitempty" yaml:"timerProgressBar,omitempty"`

	AllowOutsideClick      *bool `json:"allowOutsideClick,omitempty" yaml:"allowOutsideClick,omitempty"`
	AllowEscapeKey         *bool `json:"allowEscapeKey,omitempty" yaml:"allowEscapeKey,omitempty"`
	AllowEnterKey          *bool `json:"allowEnterKey,omitempty" yaml:"allowEnterKey,omitempty"`
	StopKeydownPropagation *bool `json:"stopKeydownPropagation,omitempty" yaml:"stopKeydownPropagation,omitempty"`
	KeydownListenerCapture *bool `json:"keydownListenerCapture,omitempty" yaml:"keydownListenerCapture,omitempty"`

	ShowConfirmButton      *bool  `json:"showConfirmButton,omitempty" yaml:"showConfirmButton,omitempty"`
	ShowDenyButton         *bool  `json:"showDenyButton,omitempty" yaml:"showDenyButton,omitempty"`
	ShowCancelButton       *bool  `json:"showCancelButton,omitempty" yaml:"showCancelButton,omitempty"`
	ConfirmButtonText      string `json:"confirmButtonText,omitempty" yaml:"confirmButtonText,omitempty"`
	DenyButtonText         string `json:"denyButtonText,omitempty" yaml:"denyButtonText,omitempty"`
	CancelButtonText       string `json:"cancelButtonText,omitempty" yaml:"cancelButtonText,omitempty"`
	ConfirmButtonColor     string `json:"confirmButtonColor,omitempty" yaml:"confirmButtonColor,omitempty"`
	DenyButtonColor        string `json:"denyButtonColor,omitempty" yaml:"denyButtonColor,omitempty"`
	CancelButtonColor      string `json:"cancelButtonColor,omitempty" yaml:"cancelButtonColor,omitempty"`
	ConfirmButtonAriaLabel string `json:"confirmButtonAriaLabel,omitempty" yaml:"confirmButtonAriaLabel,omitempty"`
	DenyButtonAriaLabel    string `json:"denyButtonAriaLabel,omitempty" yaml:"denyButtonAriaLabel,omitempty"`
	CancelButtonAriaLabel  string `json:"cancelButtonAriaLabel,omitempty" yaml:"cancelButtonAriaLabel,omitempty"`
	ButtonsStyling         *bool  `json:"buttonsStyling,omitempty" yaml:"buttonsStyling,omitempty"`
	ReverseButtons         *bool  `json:"reverseButtons,omitempty" yaml:"reverseButtons,omitempty"`
	FocusConfirm           *bool  `json:"focusConfirm,omitempty" yaml:"focusConfirm,omitempty"`
	FocusDeny              *bool  `json:"focusDeny,omitempty" yaml:"focusDeny,omitempty"`
	FocusCancel            *bool  `json:"focusCancel,omitempty" yaml:"focusCancel,omitempty"`
	ReturnFocus            *bool  `json:"returnFocus,omitempty" yaml:"returnFocus,omitempty"`
	ShowCloseButton        *bool  `json:"showCloseButton,omitempty" yaml:"showCloseButton,omitempty"`
	CloseButtonHTML        string `json:"closeButtonHtml,omitempty" yaml:"closeButtonHtml,omitempty"`
	CloseButtonAriaLabel   string `json:"closeButtonAriaLabel,omitempty" yaml:"closeButtonAriaLabel,omitempty"`
	LoaderHTML             string `json:"loaderHtml,omitempty" yaml:"loaderHtml,omitempty"`
	ShowLoaderOnConfirm    *bool  `json:"showLoaderOnConfirm,omitempty" yaml:"showLoaderOnConfirm,omitempty"`
	ShowLoaderOnDeny       *bool  `json:"showLoaderOnDeny,omitempty" yaml:"showLoaderOnDeny,omitempty"`

	Input            InputType `json:"input,omitempty" yaml:"input,omitempty"`
	InputLabel       string    `json:"inputLabel,omitempty" yaml:"inputLabel,omitempty"`
	InputPlaceholder string    `json:"inputPlaceholder,omitempty" yaml:"inputPlaceholder,omitempty"`
	InputValue       string    `json:"inputValue,omitempty" yaml:"inputValue,omitempty"`
	// InputOptions is only read by the engine for select and radio inputs.
	InputOptions    *Choices          `json:"inputOptions,omitempty" yaml:"inputOptions,omitempty"`
	InputAutoTrim   *bool             `json:"inputAutoTrim,omitempty" yaml:"inputAutoTrim,omitempty"`
	InputAttributes map[string]string `json:"inputAttributes,omitempty" yaml:"inputAttributes,omitempty"`
	// ReturnInputValueOnDeny makes deny carry the input value instead of false.
	ReturnInputValueOnDeny *bool  `json:"returnInputValueOnDeny,omitempty" yaml:"returnInputValueOnDeny,omitempty"`
	ValidationMessage      string `json:"validationMessage,omitempty" yaml:"validationMessage,omitempty"`

	ProgressSteps []string `json:"progressSteps,omitempty" yaml:"progressSteps,omitempty"`
	// CurrentProgressStep is the zero-based index of the active step.
	CurrentProgressStep   string `json:"currentProgressStep,omitempty" yaml:"currentProgressStep,omitempty"`
	ProgressStepsDistance string `json:"progressStepsDistance,omitempty" yaml:"progressStepsDistance,omitempty"`

	WillOpen   Hook `json:"-" yaml:"-"`
	DidOpen    Hook `json:"-" yaml:"-"`
	WillClose  Hook `json:"-" yaml:"-"`
	DidClose   Hook `json:"-" yaml:"-"`
	DidDestroy Hook `json:"-" yaml:"-"`
	DidRender  Hook `json:"-" yaml:"-"`

	PreConfirm     Gate      `json:"-" yaml:"-"`
	PreDeny        Gate      `json:"-" yaml:"-"`
	InputValidator Validator `json:"-" yaml:"-"`
}

// New returns empty Options.
func New() Options {
	return Options{}
}

// NewTitled returns Options with only Title set.
func NewTitled(title string) Options {
	return Options{Title: title}
}

// Bool returns a pointer to b, for tri-state fields.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
