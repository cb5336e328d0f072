package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/popwire/internal/core/config"
	"github.com/hay-kot/popwire/internal/preset"
)

// presetVars merges config variables with --set overrides.
func presetVars(cfg *config.Config, sets []string) (map[string]any, error) {
	vars := make(map[string]any)
	if cfg != nil {
		maps.Copy(vars, cfg.Presets.Vars)
	}

	overrides, err := parseSets(sets)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		vars[k] = v
	}
	return vars, nil
}

// parseSets parses key=value pairs from repeated --set flags.
func parseSets(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", s)
		}
		out[k] = v
	}
	return out, nil
}

// presetPatterns returns args when given, else the configured patterns.
func presetPatterns(cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg != nil && len(cfg.Presets.Patterns) > 0 {
		return cfg.Presets.Patterns, nil
	}
	return nil, fmt.Errorf("no presets given and no presets.patterns configured")
}

// loadPresets resolves args (or the configured patterns) and loads them.
func loadPresets(ctx context.Context, cfg *config.Config, args, sets []string) ([]preset.Preset, error) {
	patterns, err := presetPatterns(cfg, args)
	if err != nil {
		return nil, err
	}

	vars, err := presetVars(cfg, sets)
	if err != nil {
		return nil, err
	}

	presets, err := preset.Glob(ctx, patterns, vars)
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets matched %s", strings.Join(patterns, ", "))
	}
	return presets, nil
}

// encode writes v to w as JSON or YAML.
func encode(w io.Writer, format string, indent int, v any) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(indent, 2))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

// outputSettings returns the configured format and indent, with flag
// overrides applied.
func outputSettings(cfg *config.Config, format string) (string, int) {
	def := config.DefaultConfig()
	f, indent := def.Output.Format, def.Output.Indent
	if cfg != nil {
		f, indent = cfg.Output.Format, cfg.Output.Indent
	}
	if format != "" {
		f = format
	}
	return f, indent
}
