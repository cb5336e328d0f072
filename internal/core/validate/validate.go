// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var presetNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// PresetName validates a preset name: lowercase letters, digits, dots,
// dashes and underscores, not starting with punctuation.
func PresetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if !presetNameRe.MatchString(name) {
		return fmt.Errorf("invalid name %q: use lowercase letters, digits, '.', '-' or '_'", name)
	}
	return nil
}

// Surface validates a surface name is non-empty after trimming whitespace.
func Surface(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("surface is required")
	}
	return nil
}
