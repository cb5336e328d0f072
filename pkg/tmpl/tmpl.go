// Package tmpl renders preset files as Go templates before they are decoded.
package tmpl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// quote returns s as a double-quoted JSON string. The result is also a valid
// YAML scalar, so it is safe in either preset format.
func quote(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// orDefault returns v, or def when v is empty.
func orDefault(def, v any) any {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && s == "" {
		return def
	}
	return v
}

var funcs = template.FuncMap{
	"quote":   quote,
	"default": orDefault,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - quote: JSON-quote a string so it survives YAML and JSON decoding
//   - default: fall back to a value when the piped value is empty
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
