package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 30*time.Second, cfg.Interop.GateTimeout)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
interop:
  gate_timeout: 5s
presets:
  patterns: ["dialogs/*.yaml"]
  vars:
    brand: Acme
output:
  format: yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 5*time.Second, cfg.Interop.GateTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Interop.EntryTTL)
	assert.Equal(t, []string{"dialogs/*.yaml"}, cfg.Presets.Patterns)
	assert.Equal(t, "Acme", cfg.Presets.Vars["brand"])
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"future version", "version: 99\n"},
		{"negative timeout", "interop:\n  gate_timeout: -1s\n"},
		{"unknown format", "output:\n  format: xml\n"},
		{"malformed yaml", "interop: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Journal(t *testing.T) {
	cfg, err := Load(writeConfig(t, "journal:\n  path: /tmp/j.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/j.json", cfg.Journal.Path)
	assert.Equal(t, 100, cfg.Journal.MaxEntries)

	_, err = Load(writeConfig(t, "journal:\n  max_entries: -5\n"))
	assert.Error(t, err)
}
