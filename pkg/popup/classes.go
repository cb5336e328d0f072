package popup

// ShowClass lists CSS classes applied while the popup animates in.
type ShowClass struct {
	Popup    string `json:"popup,omitempty" yaml:"popup,omitempty"`
	Backdrop string `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// HideClass lists CSS classes applied while the popup animates out.
type HideClass struct {
	Popup    string `json:"popup,omitempty" yaml:"popup,omitempty"`
	Backdrop string `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// CustomClass overrides the CSS class of individual popup parts.
type CustomClass struct {
	Container         string `json:"container,omitempty" yaml:"container,omitempty"`
	Popup             string `json:"popup,omitempty" yaml:"popup,omitempty"`
	Title             string `json:"title,omitempty" yaml:"title,omitempty"`
	CloseButton       string `json:"closeButton,omitempty" yaml:"closeButton,omitempty"`
	Icon              string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Image             string `json:"image,omitempty" yaml:"image,omitempty"`
	HTMLContainer     string `json:"htmlContainer,omitempty" yaml:"htmlContainer,omitempty"`
	Input             string `json:"input,omitempty" yaml:"input,omitempty"`
	InputLabel        string `json:"inputLabel,omitempty" yaml:"inputLabel,omitempty"`
	ValidationMessage string `json:"validationMessage,omitempty" yaml:"validationMessage,omitempty"`
	Actions           string `json:"actions,omitempty" yaml:"actions,omitempty"`
	ConfirmButton     string `json:"confirmButton,omitempty" yaml:"confirmButton,omitempty"`
	DenyButton        string `json:"denyButton,omitempty" yaml:"denyButton,omitempty"`
	CancelButton      string `json:"cancelButton,omitempty" yaml:"cancelButton,omitempty"`
	Loader            string `json:"loader,omitempty" yaml:"loader,omitempty"`
	Footer            string `json:"footer,omitempty" yaml:"footer,omitempty"`
	TimerProgressBar  string `json:"timerProgressBar,omitempty" yaml:"timerProgressBar,omitempty"`
}
