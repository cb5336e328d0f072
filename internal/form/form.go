// Package form collects preset options through an interactive huh form and
// turns the answers into popup options.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/popwire/internal/styles"
	"github.com/hay-kot/popwire/pkg/popup"
)

// FieldType is the kind of form control a Field renders as.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeText        FieldType = "text"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multi-select"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one question of the preset form. Name is the option key the
// answer is stored under.
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Placeholder string
	Default     string
	Required    bool
	Options     []Option
	Validate    func(string) error
}

// Button names accepted by the "buttons" field.
const (
	ButtonDeny   = "deny"
	ButtonCancel = "cancel"
	ButtonClose  = "close"
)

// PresetFields returns the questions asked by `popwire new`.
func PresetFields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Type: FieldTypeString, Required: true, Placeholder: "Are you sure?"},
		{Name: "text", Label: "Text", Type: FieldTypeText, Placeholder: "Plain text shown under the title"},
		{Name: "icon", Label: "Icon", Type: FieldTypeSelect, Options: enumOptions(popup.AllIcons())},
		{Name: "input", Label: "Input", Type: FieldTypeSelect, Options: enumOptions(popup.AllInputTypes())},
		{Name: "confirmButtonText", Label: "Confirm button text", Type: FieldTypeString, Placeholder: "OK"},
		{
			Name:  "buttons",
			Label: "Extra buttons",
			Type:  FieldTypeMultiSelect,
			Options: []Option{
				{Value: ButtonDeny, Label: "Deny"},
				{Value: ButtonCancel, Label: "Cancel"},
				{Value: ButtonClose, Label: "Close (x)"},
			},
		},
		{Name: "timer", Label: "Auto close after", Type: FieldTypeString, Placeholder: "3s", Validate: validateTimer},
	}
}

func enumOptions[E interface{ String() string }](all []E) []Option {
	out := make([]Option, 0, len(all)+1)
	out = append(out, Option{Value: "", Label: "none"})
	for _, v := range all {
		out = append(out, Option{Value: v.String()})
	}
	return out
}

// AllFieldsPrefilled returns true if every required field has a value in
// prefilled.
func AllFieldsPrefilled(fields []Field, prefilled map[string]any) bool {
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if _, ok := prefilled[field.Name]; !ok {
			return false
		}
	}
	return true
}

// Run shows a huh form for fields and returns the answers merged over
// prefilled. Prefilled values are used as the fields' initial values.
func Run(fields []Field, prefilled map[string]any) (map[string]any, error) {
	if prefilled == nil {
		prefilled = make(map[string]any)
	}

	huhFields := make([]huh.Field, 0, len(fields))
	bindings := make(map[string]any)

	for _, field := range fields {
		prefilledVal, hasPrefilled := prefilled[field.Name]
		f, binding := createFieldWithValue(field, prefilledVal, hasPrefilled)
		if f != nil {
			huhFields = append(huhFields, f)
			bindings[field.Name] = binding
		}
	}

	values := make(map[string]any, len(prefilled)+len(bindings))
	for k, v := range prefilled {
		values[k] = v
	}

	if len(huhFields) == 0 {
		return values, nil
	}

	form := huh.NewForm(huh.NewGroup(huhFields...)).WithTheme(styles.FormTheme())
	if err := form.Run(); err != nil {
		return nil, err
	}

	for name, binding := range bindings {
		values[name] = extractValue(binding)
	}
	return values, nil
}

// createFieldWithValue creates a huh field with an optional prefilled value.
// Returns the field and a binding pointer for value extraction.
func createFieldWithValue(field Field, prefilledVal any, hasPrefilled bool) (huh.Field, any) {
	switch field.Type {
	case FieldTypeString:
		return createStringField(field, prefilledVal, hasPrefilled)
	case FieldTypeText:
		return createTextField(field, prefilledVal, hasPrefilled)
	case FieldTypeSelect:
		return createSelectField(field, prefilledVal, hasPrefilled)
	case FieldTypeMultiSelect:
		return createMultiSelectField(field, prefilledVal, hasPrefilled)
	default:
		return nil, nil
	}
}

func initialString(field Field, prefilledVal any, hasPrefilled bool) string {
	if hasPrefilled {
		if s, ok := prefilledVal.(string); ok {
			return s
		}
		return ""
	}
	return field.Default
}

func createStringField(field Field, prefilledVal any, hasPrefilled bool) (huh.Field, any) {
	value := initialString(field, prefilledVal, hasPrefilled)

	input := huh.NewInput().
		Title(fieldTitle(field)).
		Value(&value)

	if field.Placeholder != "" {
		input.Placeholder(field.Placeholder)
	}
	if v := fieldValidator(field); v != nil {
		input.Validate(v)
	}

	return input, &value
}

func createTextField(field Field, prefilledVal any, hasPrefilled bool) (huh.Field, any) {
	value := initialString(field, prefilledVal, hasPrefilled)

	text := huh.NewText().
		Title(fieldTitle(field)).
		Value(&value)

	if field.Placeholder != "" {
		text.Placeholder(field.Placeholder)
	}
	if v := fieldValidator(field); v != nil {
		text.Validate(v)
	}

	return text, &value
}

func createSelectField(field Field, prefilledVal any, hasPrefilled bool) (huh.Field, any) {
	value := initialString(field, prefilledVal, hasPrefilled)

	sel := huh.NewSelect[string]().
		Title(fieldTitle(field)).
		Options(huhOptions(field.Options)...).
		Value(&value)

	return sel, &value
}

func createMultiSelectField(field Field, prefilledVal any, hasPrefilled bool) (huh.Field, any) {
	var values []string
	if hasPrefilled {
		if arr, ok := prefilledVal.([]string); ok {
			values = arr
		}
	}

	multi := huh.NewMultiSelect[string]().
		Title(fieldTitle(field)).
		Options(huhOptions(field.Options)...).
		Value(&values)

	return multi, &values
}

func huhOptions(opts []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		out[i] = huh.NewOption(label, opt.Value)
	}
	return out
}

// fieldTitle generates the display title for a field.
func fieldTitle(field Field) string {
	title := field.Label
	if title == "" {
		title = field.Name
	}
	if field.Required {
		title += " *"
	}
	return title
}

// fieldValidator combines the required check with the field's own validator.
func fieldValidator(field Field) func(string) error {
	if !field.Required && field.Validate == nil {
		return nil
	}
	return func(s string) error {
		if field.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldTitle(field))
		}
		if field.Validate != nil {
			return field.Validate(s)
		}
		return nil
	}
}

func validateTimer(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("timer must be a duration such as 3s or 500ms")
	}
	if d < time.Millisecond {
		return fmt.Errorf("timer must be at least 1ms")
	}
	return nil
}

// extractValue extracts the actual value from a binding pointer.
func extractValue(binding any) any {
	switch v := binding.(type) {
	case *string:
		return *v
	case *[]string:
		return *v
	default:
		return nil
	}
}

// ParseSetValues parses --set flag values into a map.
// Format: "name=value" or "name=val1,val2" for multi-select.
func ParseSetValues(sets []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set format %q: expected name=value", s)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid --set format %q: empty name", s)
		}

		if strings.Contains(value, ",") {
			values := strings.Split(value, ",")
			for i := range values {
				values[i] = strings.TrimSpace(values[i])
			}
			result[name] = values
		} else {
			result[name] = value
		}
	}

	return result, nil
}

// ValidateRequiredFields checks that all required fields have values.
func ValidateRequiredFields(fields []Field, values map[string]any) error {
	for _, field := range fields {
		if !field.Required {
			continue
		}

		v, ok := values[field.Name]
		if !ok {
			return fmt.Errorf("required field %q is missing", field.Name)
		}

		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("required field %q is empty", field.Name)
			}
		case []string:
			if len(val) == 0 {
				return fmt.Errorf("required field %q has no selections", field.Name)
			}
		}
	}

	return nil
}
