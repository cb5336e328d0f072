// Package reference describes every option the wire record carries. It backs
// `popwire fields` and keeps documentation next to the names the engine uses.
package reference

import (
	"github.com/hay-kot/popwire/pkg/popup"
)

// Kind is the shape of an option's value on the wire.
type Kind string

const (
	KindString   Kind = "string"
	KindHTML     Kind = "html"
	KindBool     Kind = "bool"
	KindNumber   Kind = "number"
	KindEnum     Kind = "enum"
	KindMillis   Kind = "milliseconds"
	KindMap      Kind = "map"
	KindList     Kind = "list"
	KindClasses  Kind = "classes"
	KindCallback Kind = "callback"
)

// Group is a section of the option reference.
type Group string

const (
	GroupContent   Group = "Content"
	GroupLayout    Group = "Layout"
	GroupBehavior  Group = "Behavior"
	GroupButtons   Group = "Buttons"
	GroupImage     Group = "Image"
	GroupInput     Group = "Input"
	GroupProgress  Group = "Progress"
	GroupLifecycle Group = "Lifecycle"
)

// Groups lists the groups in reference order.
var Groups = []Group{
	GroupContent, GroupLayout, GroupBehavior, GroupButtons,
	GroupImage, GroupInput, GroupProgress, GroupLifecycle,
}

// Field documents one wire option.
type Field struct {
	Name        string   `json:"name"`
	Group       Group    `json:"group"`
	Kind        Kind     `json:"kind"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
}

func enumValues[E interface{ String() string }](all []E) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = v.String()
	}
	return out
}

// Catalog returns every option in wire order.
func Catalog() []Field {
	return []Field{
		{Name: "title", Group: GroupContent, Kind: KindHTML, Description: "Title of the popup, as HTML."},
		{Name: "titleText", Group: GroupContent, Kind: KindString, Description: "Title of the popup as plain text. Avoids HTML injection."},
		{Name: "text", Group: GroupContent, Kind: KindString, Description: "Plain text description. Shown instead of html when both are set."},
		{Name: "html", Group: GroupContent, Kind: KindHTML, Description: "Description as HTML."},
		{Name: "footer", Group: GroupContent, Kind: KindHTML, Description: "Footer of the popup, as HTML."},
		{Name: "icon", Group: GroupContent, Kind: KindEnum, Description: "Built-in animated icon.", Values: enumValues(popup.AllIcons())},
		{Name: "iconColor", Group: GroupContent, Kind: KindString, Description: "Color of the icon."},
		{Name: "iconHtml", Group: GroupContent, Kind: KindHTML, Description: "Custom HTML content for the icon."},
		{Name: "backdrop", Group: GroupBehavior, Kind: KindBool, Description: "Show a full screen click-to-dismiss backdrop."},
		{Name: "toast", Group: GroupLayout, Kind: KindBool, Description: "Render as a toast notification. Usually paired with position and timer. Toasts are never autofocused."},
		{Name: "target", Group: GroupLayout, Kind: KindString, Description: "Query selector of the container the popup is added to."},
		{Name: "input", Group: GroupInput, Kind: KindEnum, Description: "Input field type.", Values: enumValues(popup.AllInputTypes())},

		{Name: "width", Group: GroupLayout, Kind: KindString, Description: "Popup width including padding, in px or %."},
		{Name: "padding", Group: GroupLayout, Kind: KindString, Description: "Popup padding."},
		{Name: "color", Group: GroupLayout, Kind: KindString, Description: "CSS color for title, content and footer."},
		{Name: "background", Group: GroupLayout, Kind: KindString, Description: "CSS background of the popup."},
		{Name: "position", Group: GroupLayout, Kind: KindEnum, Description: "Popup position on screen.", Values: enumValues(popup.AllPositions())},
		{Name: "grow", Group: GroupLayout, Kind: KindEnum, Description: "Direction the popup grows in.", Values: enumValues(popup.AllGrowDirections())},
		{Name: "showClass", Group: GroupLayout, Kind: KindClasses, Description: "CSS classes for the show animation (popup, backdrop, icon)."},
		{Name: "hideClass", Group: GroupLayout, Kind: KindClasses, Description: "CSS classes for the hide animation (popup, backdrop, icon)."},
		{Name: "customClass", Group: GroupLayout, Kind: KindClasses, Description: "Extra CSS classes per popup part."},

		{Name: "timer", Group: GroupBehavior, Kind: KindMillis, Description: "Auto close timer in milliseconds. Presets accept durations such as 3s."},
		{Name: "timerProgressBar", Group: GroupBehavior, Kind: KindBool, Description: "Show a progress bar for the timer at the bottom of the popup."},
		{Name: "heightAuto", Group: GroupLayout, Kind: KindBool, Description: "Set to false to stop the engine forcing html and body height to auto."},
		{Name: "allowOutsideClick", Group: GroupBehavior, Kind: KindBool, Description: "Set to false to stop dismissal by clicking outside the popup."},
		{Name: "allowEscapeKey", Group: GroupBehavior, Kind: KindBool, Description: "Set to false to stop dismissal with the Escape key."},
		{Name: "allowEnterKey", Group: GroupBehavior, Kind: KindBool, Description: "Set to false to stop Enter and Space confirming unless the confirm button is focused."},
		{Name: "stopKeydownPropagation", Group: GroupBehavior, Kind: KindBool, Description: "Set to false to let keydown events propagate to the document."},
		{Name: "keydownListenerCapture", Group: GroupBehavior, Kind: KindBool, Description: "Capture keydown so Escape does not also close an underlying modal."},

		{Name: "showConfirmButton", Group: GroupButtons, Kind: KindBool, Description: "Set to false to hide the confirm button."},
		{Name: "showDenyButton", Group: GroupButtons, Kind: KindBool, Description: "Show the deny button."},
		{Name: "showCancelButton", Group: GroupButtons, Kind: KindBool, Description: "Show the cancel button, which dismisses the popup."},
		{Name: "confirmButtonText", Group: GroupButtons, Kind: KindHTML, Description: "Confirm button label."},
		{Name: "denyButtonText", Group: GroupButtons, Kind: KindHTML, Description: "Deny button label."},
		{Name: "cancelButtonText", Group: GroupButtons, Kind: KindHTML, Description: "Cancel button label."},
		{Name: "confirmButtonColor", Group: GroupButtons, Kind: KindString, Description: "Confirm button background color."},
		{Name: "denyButtonColor", Group: GroupButtons, Kind: KindString, Description: "Deny button background color."},
		{Name: "cancelButtonColor", Group: GroupButtons, Kind: KindString, Description: "Cancel button background color."},
		{Name: "confirmButtonAriaLabel", Group: GroupButtons, Kind: KindString, Description: "aria-label of the confirm button."},
		{Name: "denyButtonAriaLabel", Group: GroupButtons, Kind: KindString, Description: "aria-label of the deny button."},
		{Name: "cancelButtonAriaLabel", Group: GroupButtons, Kind: KindString, Description: "aria-label of the cancel button."},
		{Name: "buttonsStyling", Group: GroupButtons, Kind: KindBool, Description: "Set to false to style buttons with your own classes."},
		{Name: "reverseButtons", Group: GroupButtons, Kind: KindBool, Description: "Swap the default button order."},
		{Name: "focusConfirm", Group: GroupButtons, Kind: KindBool, Description: "Set to false to focus the first tabbable element instead of confirm."},
		{Name: "focusDeny", Group: GroupButtons, Kind: KindBool, Description: "Focus the deny button initially."},
		{Name: "focusCancel", Group: GroupButtons, Kind: KindBool, Description: "Focus the cancel button initially."},
		{Name: "returnFocus", Group: GroupButtons, Kind: KindBool, Description: "Set to false to keep focus away from the element that opened the popup."},
		{Name: "showCloseButton", Group: GroupButtons, Kind: KindBool, Description: "Show a close button in the top right corner."},
		{Name: "closeButtonHtml", Group: GroupButtons, Kind: KindHTML, Description: "Content of the close button."},
		{Name: "closeButtonAriaLabel", Group: GroupButtons, Kind: KindString, Description: "aria-label of the close button."},
		{Name: "loaderHtml", Group: GroupButtons, Kind: KindHTML, Description: "Content of the loader."},
		{Name: "showLoaderOnConfirm", Group: GroupButtons, Kind: KindBool, Description: "Disable buttons and show the loader while preConfirm runs."},
		{Name: "showLoaderOnDeny", Group: GroupButtons, Kind: KindBool, Description: "Disable buttons and show the loader while preDeny runs."},
		{Name: "preConfirm", Group: GroupButtons, Kind: KindCallback, Description: "Runs before confirming. false keeps the popup open, null keeps the default value, anything else becomes the result value."},
		{Name: "preDeny", Group: GroupButtons, Kind: KindCallback, Description: "Runs before denying, with the same return rules as preConfirm."},

		{Name: "imageUrl", Group: GroupImage, Kind: KindString, Description: "Path or URL of an image shown in the popup."},
		{Name: "imageWidth", Group: GroupImage, Kind: KindNumber, Description: "Image width."},
		{Name: "imageHeight", Group: GroupImage, Kind: KindNumber, Description: "Image height."},
		{Name: "imageAlt", Group: GroupImage, Kind: KindString, Description: "Alternative text of the image."},

		{Name: "inputLabel", Group: GroupInput, Kind: KindString, Description: "Input field label."},
		{Name: "inputPlaceholder", Group: GroupInput, Kind: KindString, Description: "Input field placeholder."},
		{Name: "inputValue", Group: GroupInput, Kind: KindString, Description: "Initial input value."},
		{Name: "inputOptions", Group: GroupInput, Kind: KindMap, Description: "Ordered value to label pairs for select and radio inputs."},
		{Name: "inputAutoTrim", Group: GroupInput, Kind: KindBool, Description: "Set to false to keep surrounding whitespace in the result."},
		{Name: "inputAttributes", Group: GroupInput, Kind: KindMap, Description: "HTML attributes added to the input, such as min, max or accept."},
		{Name: "inputValidator", Group: GroupInput, Kind: KindCallback, Description: "Validates the input. A returned message rejects the value."},
		{Name: "returnInputValueOnDeny", Group: GroupInput, Kind: KindBool, Description: "Deny with the input value instead of false."},
		{Name: "validationMessage", Group: GroupInput, Kind: KindString, Description: "Message for the built-in email and url validators."},

		{Name: "progressSteps", Group: GroupProgress, Kind: KindList, Description: "Ordered progress step labels, for popup queues."},
		{Name: "currentProgressStep", Group: GroupProgress, Kind: KindString, Description: "Zero-based index of the active step in progressSteps."},
		{Name: "progressStepsDistance", Group: GroupProgress, Kind: KindString, Description: "Distance between progress steps."},

		{Name: "willOpen", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs before the popup is shown."},
		{Name: "didOpen", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs after the popup is shown."},
		{Name: "willClose", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs when the user closes the popup."},
		{Name: "didClose", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs after the user closed the popup."},
		{Name: "didDestroy", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs after the popup is destroyed, including when another popup replaces it. Prefer it for cleanup."},
		{Name: "didRender", Group: GroupLifecycle, Kind: KindCallback, Description: "Runs after the popup DOM is updated, before repaint."},

		{Name: "scrollbarPadding", Group: GroupLayout, Kind: KindBool, Description: "Set to false to skip body padding adjustment when a scrollbar is present."},
	}
}

// Lookup returns the field called name.
func Lookup(name string) (Field, bool) {
	for _, f := range Catalog() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
