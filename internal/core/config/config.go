// Package config handles configuration loading and validation for popwire.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config file version this build understands.
const CurrentVersion = 1

// Output formats accepted by output.format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Interop InteropConfig `yaml:"interop"`
	Presets PresetsConfig `yaml:"presets"`
	Output  OutputConfig  `yaml:"output"`
	Journal JournalConfig `yaml:"journal"`
}

// InteropConfig bounds the callback side table.
type InteropConfig struct {
	// GateTimeout caps how long a pre-confirm, pre-deny or validator callback
	// may take before the engine gets an error back.
	GateTimeout time.Duration `yaml:"gate_timeout"`
	// EntryTTL releases popups whose didDestroy never arrived.
	EntryTTL time.Duration `yaml:"entry_ttl"`
}

// PresetsConfig controls where presets are found and what they are rendered with.
type PresetsConfig struct {
	// Patterns are doublestar globs, relative to the working directory.
	Patterns []string `yaml:"patterns"`
	// Vars are passed to every preset template.
	Vars map[string]any `yaml:"vars"`
}

// OutputConfig controls how projected records are written.
type OutputConfig struct {
	Format string `yaml:"format"` // json or yaml
	Indent int    `yaml:"indent"`
}

// JournalConfig controls where `popwire resolve` records its runs.
type JournalConfig struct {
	// Path of the journal file. Empty means $XDG_DATA_HOME/popwire/journal.json.
	Path       string `yaml:"path"`
	MaxEntries int    `yaml:"max_entries"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Version: CurrentVersion,
		Interop: InteropConfig{
			GateTimeout: 30 * time.Second,
			EntryTTL:    10 * time.Minute,
		},
		Presets: PresetsConfig{
			Patterns: []string{"presets/**/*.{yaml,yml,json}"},
			Vars:     map[string]any{},
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
		Journal: JournalConfig{
			MaxEntries: 100,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = defaults.Output.Indent
	}
	if len(c.Presets.Patterns) == 0 {
		c.Presets.Patterns = defaults.Presets.Patterns
	}
	if c.Journal.MaxEntries == 0 {
		c.Journal.MaxEntries = defaults.Journal.MaxEntries
	}
	if c.Presets.Vars == nil {
		c.Presets.Vars = map[string]any{}
	}
}

// Validate checks the fields Load cannot work without. ValidateDeep covers
// the rest.
func (c *Config) Validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("version %d is newer than supported version %d", c.Version, CurrentVersion)
	}

	if c.Interop.GateTimeout < 0 {
		return fmt.Errorf("interop.gate_timeout cannot be negative")
	}

	if c.Interop.EntryTTL < 0 {
		return fmt.Errorf("interop.entry_ttl cannot be negative")
	}

	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format)
	}

	if c.Journal.MaxEntries < 0 {
		return fmt.Errorf("journal.max_entries cannot be negative")
	}

	return nil
}

func isValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}
