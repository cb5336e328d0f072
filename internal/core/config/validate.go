package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category" yaml:"category"`
	Item     string `json:"item,omitempty" yaml:"item,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this checks file access, glob syntax and template vars,
// and reports every problem as criterio.FieldErrors.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	errs = c.validateFileAccess(errs, configPath)
	errs = c.validateInterop(errs)
	errs = c.validatePresets(errs)
	errs = c.validateOutput(errs)
	errs = c.validateJournal(errs)

	return errs.ToError()
}

func (c *Config) validateFileAccess(errs criterio.FieldErrorsBuilder, configPath string) criterio.FieldErrorsBuilder {
	if configPath == "" {
		return errs
	}

	info, err := os.Stat(configPath)
	switch {
	case err == nil && info.IsDir():
		errs = errs.Append("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	case err != nil && !os.IsNotExist(err):
		errs = errs.Append("config_file", fmt.Errorf("cannot access %s: %w", configPath, err))
	}
	return errs
}

func (c *Config) validateInterop(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if c.Interop.GateTimeout < 0 {
		errs = errs.Append("interop.gate_timeout", fmt.Errorf("cannot be negative"))
	}
	if c.Interop.EntryTTL < 0 {
		errs = errs.Append("interop.entry_ttl", fmt.Errorf("cannot be negative"))
	}
	return errs
}

func (c *Config) validatePresets(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	for i, pattern := range c.Presets.Patterns {
		field := fmt.Sprintf("presets.patterns[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			errs = errs.Append(field, fmt.Errorf("pattern is empty"))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(field, fmt.Errorf("invalid glob %q", pattern))
		}
	}

	for key := range c.Presets.Vars {
		if !isIdentifier(key) {
			errs = errs.Append("presets.vars."+key, fmt.Errorf("must be a valid template identifier"))
		}
	}
	return errs
}

func (c *Config) validateOutput(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if !isValidFormat(c.Output.Format) {
		errs = errs.Append("output.format", fmt.Errorf("must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format))
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		errs = errs.Append("output.indent", fmt.Errorf("must be between 0 and 8"))
	}
	return errs
}

func (c *Config) validateJournal(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if c.Journal.MaxEntries < 0 {
		errs = errs.Append("journal.max_entries", fmt.Errorf("cannot be negative"))
	}
	if c.Journal.Path != "" {
		if info, err := os.Stat(c.Journal.Path); err == nil && info.IsDir() {
			errs = errs.Append("journal.path", fmt.Errorf("%s is a directory, not a file", c.Journal.Path))
		}
	}
	return errs
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Interop.GateTimeout == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Interop",
			Item:     "gate_timeout",
			Message:  "no gate timeout; a callback that never answers keeps its popup waiting forever",
		})
	}

	if c.Interop.EntryTTL > 0 && c.Interop.GateTimeout > c.Interop.EntryTTL {
		warnings = append(warnings, ValidationWarning{
			Category: "Interop",
			Item:     "entry_ttl",
			Message:  "entry_ttl is shorter than gate_timeout; pending popups may be pruned",
		})
	}

	for _, pattern := range c.Presets.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithNoFollow())
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Presets",
				Item:     pattern,
				Message:  "pattern matches no files",
			})
		}
	}

	return warnings
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isIdentifier reports whether key can be referenced as {{ .key }}.
func isIdentifier(key string) bool {
	return identRe.MatchString(key)
}
