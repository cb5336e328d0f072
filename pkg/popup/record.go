package popup

// Record is the wire shape of Options. Keys and enum literals are the
// engine's own vocabulary. Callback fields are presence flags: true means the
// owning process holds the callable and wants to be called back.
type Record struct {
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	TitleText string `json:"titleText,omitempty" yaml:"titleText,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	HTML      string `json:"html,omitempty" yaml:"html,omitempty"`
	Footer    string `json:"footer,omitempty" yaml:"footer,omitempty"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconColor string `json:"iconColor,omitempty" yaml:"iconColor,omitempty"`
	IconHTML  string `json:"iconHtml,omitempty" yaml:"iconHtml,omitempty"`
	Backdrop  *bool  `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Toast     *bool  `json:"toast,omitempty" yaml:"toast,omitempty"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	Input     string `json:"input,omitempty" yaml:"input,omitempty"`

	Width       string       `json:"width,omitempty" yaml:"width,omitempty"`
	Padding     string       `json:"padding,omitempty" yaml:"padding,omitempty"`
	Color       string       `json:"color,omitempty" yaml:"color,omitempty"`
	Background  string       `json:"background,omitempty" yaml:"background,omitempty"`
	Position    string       `json:"position,omitempty" yaml:"position,omitempty"`
	Grow        string       `json:"grow,omitempty" yaml:"grow,omitempty"`
	ShowClass   *ShowClass   `json:"showClass,omitempty" yaml:"showClass,omitempty"`
	HideClass   *HideClass   `json:"hideClass,omitempty" yaml:"hideClass,omitempty"`
	CustomClass *CustomClass `json:"customClass,omitempty" yaml:"customClass,omitempty"`

	// Timer is in milliseconds.
	Timer                  *int64 `json:"timer,omitempty" yaml:"timer,omitempty"`
	TimerProgressBar       *bool  `json:"timerProgressBar,omitempty" yaml:"timerProgressBar,omitempty"`
	HeightAuto             *bool  `json:"heightAuto,omitempty" yaml:"heightAuto,omitempty"`
	AllowOutsideClick      *bool  `json:"allowOutsideClick,omitempty" yaml:"allowOutsideClick,omitempty"`
	AllowEscapeKey         *bool  `json:"allowEscapeKey,omitempty" yaml:"allowEscapeKey,omitempty"`
	AllowEnterKey          *bool  `json:"allowEnterKey,omitempty" yaml:"allowEnterKey,omitempty"`
	StopKeydownPropagation *bool  `json:"stopKeydownPropagation,omitempty" yaml:"stopKeydownPropagation,omitempty"`
	KeydownListenerCapture *bool  `json:"keydownListenerCapture,omitempty" yaml:"keydownListenerCapture,omitempty"`

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
	PreConfirm             bool   `json:"preConfirm,omitempty" yaml:"preConfirm,omitempty"`
	PreDeny                bool   `json:"preDeny,omitempty" yaml:"preDeny,omitempty"`

	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ImageWidth  *float64 `json:"imageWidth,omitempty" yaml:"imageWidth,omitempty"`
	ImageHeight *float64 `json:"imageHeight,omitempty" yaml:"imageHeight,omitempty"`
	ImageAlt    string   `json:"imageAlt,omitempty" yaml:"imageAlt,omitempty"`

	InputLabel             string            `json:"inputLabel,omitempty" yaml:"inputLabel,omitempty"`
	InputPlaceholder       string            `json:"inputPlaceholder,omitempty" yaml:"inputPlaceholder,omitempty"`
	InputValue             string            `json:"inputValue,omitempty" yaml:"inputValue,omitempty"`
	InputOptions           *Choices          `json:"inputOptions,omitempty" yaml:"inputOptions,omitempty"`
	InputAutoTrim          *bool             `json:"inputAutoTrim,omitempty" yaml:"inputAutoTrim,omitempty"`
	InputAttributes        map[string]string `json:"inputAttributes,omitempty" yaml:"inputAttributes,omitempty"`
	InputValidator         bool              `json:"inputValidator,omitempty" yaml:"inputValidator,omitempty"`
	ReturnInputValueOnDeny *bool             `json:"returnInputValueOnDeny,omitempty" yaml:"returnInputValueOnDeny,omitempty"`
	ValidationMessage      string            `json:"validationMessage,omitempty" yaml:"validationMessage,omitempty"`

	ProgressSteps         []string `json:"progressSteps,omitempty" yaml:"progressSteps,omitempty"`
	CurrentProgressStep   string   `json:"currentProgressStep,omitempty" yaml:"currentProgressStep,omitempty"`
	ProgressStepsDistance string   `json:"progressStepsDistance,omitempty" yaml:"progressStepsDistance,omitempty"`

	WillOpen   bool `json:"willOpen,omitempty" yaml:"willOpen,omitempty"`
	DidOpen    bool `json:"didOpen,omitempty" yaml:"didOpen,omitempty"`
	WillClose  bool `json:"willClose,omitempty" yaml:"willClose,omitempty"`
	DidClose   bool `json:"didClose,omitempty" yaml:"didClose,omitempty"`
	DidDestroy bool `json:"didDestroy,omitempty" yaml:"didDestroy,omitempty"`
	DidRender  bool `json:"didRender,omitempty" yaml:"didRender,omitempty"`

	ScrollbarPadding *bool `json:"scrollbarPadding,omitempty" yaml:"scrollbarPadding,omitempty"`
}

// Callbacks returns the names of the callback flags set on r, in wire order.
func (r Record) Callbacks() []string {
	flags := []struct {
		name string
		set  bool
	}{
		{"preConfirm", r.PreConfirm},
		{"preDeny", r.PreDeny},
		{"inputValidator", r.InputValidator},
		{"willOpen", r.WillOpen},
		{"didOpen", r.DidOpen},
		{"willClose", r.WillClose},
		{"didClose", r.DidClose},
		{"didDestroy", r.DidDestroy},
		{"didRender", r.DidRender},
	}

	var out []string
	for _, f := range flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}
