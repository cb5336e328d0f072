package popup

import (
	"errors"
	"fmt"
)

// ErrUnknownLiteral is returned when a string does not name a member of an
// enumeration accepted by the engine.
var ErrUnknownLiteral = errors.New("unknown literal")

// Icon selects one of the engine's built-in icon animations.
type Icon uint8

const (
	IconUnset Icon = iota
	IconWarning
	IconError
	IconSuccess
	IconInfo
	IconQuestion
	iconCount
)

var iconLabels = [iconCount]string{
	IconWarning:  "warning",
	IconError:    "error",
	IconSuccess:  "success",
	IconInfo:     "info",
	IconQuestion: "question",
}

// InputType selects the kind of input field rendered in the popup.
type InputType uint8

const (
	InputUnset InputType = iota
	InputText
	InputEmail
	InputPassword
	InputNumber
	InputTel
	InputRange
	InputTextarea
	InputSelect
	InputRadio
	InputCheckbox
	InputFile
	InputURL
	inputCount
)

var inputLabels = [inputCount]string{
	InputText:     "text",
	InputEmail:    "email",
	InputPassword: "password",
	InputNumber:   "number",
	InputTel:      "tel",
	InputRange:    "range",
	InputTextarea: "textarea",
	InputSelect:   "select",
	InputRadio:    "radio",
	InputCheckbox: "checkbox",
	InputFile:     "file",
	InputURL:      "url",
}

// UsesOptions reports whether the engine reads InputOptions for this kind.
func (t InputType) UsesOptions() bool {
	return t == InputSelect || t == InputRadio
}

// Position anchors the popup to one of nine screen points.
type Position uint8

const (
	PositionUnset Position = iota
	PositionTop
	PositionTopStart
	PositionTopEnd
	PositionCenter
	PositionCenterStart
	PositionCenterEnd
	PositionBottom
	PositionBottomStart
	PositionBottomEnd
	positionCount
)

var positionLabels = [positionCount]string{
	PositionTop:         "top",
	PositionTopStart:    "top-start",
	PositionTopEnd:      "top-end",
	PositionCenter:      "center",
	PositionCenterStart: "center-start",
	PositionCenterEnd:   "center-end",
	PositionBottom:      "bottom",
	PositionBottomStart: "bottom-start",
	PositionBottomEnd:   "bottom-end",
}

// GrowDirection makes the popup grow along an axis or fill the screen.
type GrowDirection uint8

const (
	GrowUnset GrowDirection = iota
	GrowRow
	GrowColumn
	GrowFullscreen
	growCount
)

var growLabels = [growCount]string{
	GrowRow:        "row",
	GrowColumn:     "column",
	GrowFullscreen: "fullscreen",
}

// DismissReason tells why a popup closed without confirm or deny.
type DismissReason uint8

const (
	DismissUnset DismissReason = iota
	DismissCancel
	DismissBackdrop
	DismissClose
	DismissEsc
	DismissTimer
	dismissCount
)

var dismissLabels = [dismissCount]string{
	DismissCancel:   "cancel",
	DismissBackdrop: "backdrop",
	DismissClose:    "close",
	DismissEsc:      "esc",
	DismissTimer:    "timer",
}

// The tables above are indexed by constant value. Renumbering a constant
// without touching its table breaks the build here.
func _() {
	var x [1]struct{}
	_ = x[IconWarning-1]
	_ = x[IconQuestion-5]
	_ = x[iconCount-6]
	_ = x[InputText-1]
	_ = x[InputURL-12]
	_ = x[inputCount-13]
	_ = x[PositionTop-1]
	_ = x[PositionBottomEnd-9]
	_ = x[positionCount-10]
	_ = x[GrowRow-1]
	_ = x[GrowFullscreen-3]
	_ = x[growCount-4]
	_ = x[DismissCancel-1]
	_ = x[DismissTimer-5]
	_ = x[dismissCount-6]
}

func (i Icon) String() string { return label(iconLabels[:], i) }
func (t InputType) String() string { return label(inputLabels[:], t) }
func (p Position) String() string { return label(positionLabels[:], p) }
func (g GrowDirection) String() string { return label(growLabels[:], g) }
func (d DismissReason) String() string { return label(dismissLabels[:], d) }
func (i Icon) IsSet() bool { return i != IconUnset }
func (t InputType) IsSet() bool { return t != InputUnset }
func (p Position) IsSet() bool { return p != PositionUnset }
func (g GrowDirection) IsSet() bool { return g != GrowUnset }
func (d DismissReason) IsSet() bool { return d != DismissUnset }

// ParseIcon maps an engine literal to an Icon. The empty string is Unset.
func ParseIcon(s string) (Icon, error) {
	return parse[Icon]("icon", iconLabels[:], s)
}

// ParseInputType maps an engine literal to an InputType. The empty string is Unset.
func ParseInputType(s string) (InputType, error) {
	return parse[InputType]("input", inputLabels[:], s)
}

// ParsePosition maps an engine literal to a Position. The empty string is Unset.
func ParsePosition(s string) (Position, error) {
	return parse[Position]("position", positionLabels[:], s)
}

// ParseGrowDirection maps an engine literal to a GrowDirection. The empty string is Unset.
func ParseGrowDirection(s string) (GrowDirection, error) {
	return parse[GrowDirection]("grow", growLabels[:], s)
}

// ParseDismissReason maps an engine literal to a DismissReason. The empty string is Unset.
func ParseDismissReason(s string) (DismissReason, error) {
	return parse[DismissReason]("dismiss", dismissLabels[:], s)
}

// AllIcons returns every settable icon in declaration order.
func AllIcons() []Icon { return all[Icon](iconCount) }

// AllInputTypes returns every settable input kind in declaration order.
func AllInputTypes() []InputType { return all[InputType](inputCount) }

// AllPositions returns every settable position in declaration order.
func AllPositions() []Position { return all[Position](positionCount) }

// AllGrowDirections returns every settable grow direction in declaration order.
func AllGrowDirections() []GrowDirection { return all[GrowDirection](growCount) }

// AllDismissReasons returns every dismiss reason in declaration order.
func AllDismissReasons() []DismissReason { return all[DismissReason](dismissCount) }

func (i Icon) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
func (t InputType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (g GrowDirection) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (d DismissReason) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (i *Icon) UnmarshalText(b []byte) error { return unmarshal(i, ParseIcon, b) }
func (t *InputType) UnmarshalText(b []byte) error { return unmarshal(t, ParseInputType, b) }
func (p *Position) UnmarshalText(b []byte) error { return unmarshal(p, ParsePosition, b) }
func (g *GrowDirection) UnmarshalText(b []byte) error { return unmarshal(g, ParseGrowDirection, b) }
func (d *DismissReason) UnmarshalText(b []byte) error { return unmarshal(d, ParseDismissReason, b) }

// label returns the engine literal for e, or "" for the unset value.
func label[E ~uint8](table []string, e E) string {
	if int(e) >= len(table) {
		return ""
	}
	return table[e]
}

func parse[E ~uint8](kind string, table []string, s string) (E, error) {
	if s == "" {
		return 0, nil
	}
	for i, l := range table {
		if i > 0 && l == s {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownLiteral)
}

func all[E ~uint8](count E) []E {
	out := make([]E, 0, int(count)-1)
	for e := E(1); e < count; e++ {
		out = append(out, e)
	}
	return out
}

func unmarshal[E ~uint8](dst *E, parseFn func(string) (E, error), b []byte) error {
	v, err := parseFn(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
