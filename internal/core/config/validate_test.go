package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeep_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ValidateDeep("")
	assert.NoError(t, err, "expected default config to be valid")
}

func TestValidateDeep_InvalidPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets.Patterns = []string{"presets/[abc/*.yaml", "   "}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "presets.patterns[0]", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "invalid glob")
	assert.Equal(t, "presets.patterns[1]", fieldErrs[1].Field)
	assert.Contains(t, fieldErrs[1].Err.Error(), "empty")
}

func TestValidateDeep_InvalidVarName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets.Vars = map[string]any{"brand-color": "#fff"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "presets.vars.brand-color", fieldErrs[0].Field)
}

func TestValidateDeep_NegativeDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interop.GateTimeout = -time.Second
	cfg.Interop.EntryTTL = -time.Second

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "interop.gate_timeout", fieldErrs[0].Field)
	assert.Equal(t, "interop.entry_ttl", fieldErrs[1].Field)
}

func TestValidateDeep_BadOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = OutputConfig{Format: "toml", Indent: 12}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "output.format", fieldErrs[0].Field)
	assert.Equal(t, "output.indent", fieldErrs[1].Field)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	hasConfigError := false
	for _, e := range fieldErrs {
		if e.Field == "config_file" {
			hasConfigError = true
			break
		}
	}
	assert.True(t, hasConfigError, "expected error about config file being a directory")
}

func TestWarnings_NoGateTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interop.GateTimeout = 0

	hasWarning := false
	for _, w := range cfg.Warnings() {
		if w.Category == "Interop" && w.Item == "gate_timeout" {
			hasWarning = true
			break
		}
	}
	assert.True(t, hasWarning, "expected warning about missing gate timeout")
}

func TestWarnings_TTLShorterThanGate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interop.GateTimeout = time.Minute
	cfg.Interop.EntryTTL = time.Second

	hasWarning := false
	for _, w := range cfg.Warnings() {
		if w.Item == "entry_ttl" {
			hasWarning = true
			break
		}
	}
	assert.True(t, hasWarning, "expected warning about entry_ttl")
}

func TestWarnings_PatternMatchesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "confirm.yaml"), []byte("title: hi\n"), 0o644))

	cfg := DefaultConfig()
	cfg.Presets.Patterns = []string{
		filepath.Join(dir, "*.yaml"),
		filepath.Join(dir, "missing", "*.yaml"),
	}

	var presetWarnings []ValidationWarning
	for _, w := range cfg.Warnings() {
		if w.Category == "Presets" {
			presetWarnings = append(presetWarnings, w)
		}
	}
	require.Len(t, presetWarnings, 1)
	assert.True(t, strings.HasSuffix(presetWarnings[0].Item, filepath.Join("missing", "*.yaml")))
}

func TestValidateDeep_Journal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Journal.MaxEntries = -1
	cfg.Journal.Path = t.TempDir()

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "journal.max_entries", fieldErrs[0].Field)
	assert.Equal(t, "journal.path", fieldErrs[1].Field)
}
