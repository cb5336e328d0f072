package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/popwire/internal/lint"
	"github.com/hay-kot/popwire/internal/preset"
)

// PresetsCheck loads every configured preset and lints it.
type PresetsCheck struct {
	patterns []string
	vars     map[string]any
	rules    []lint.Rule
}

// NewPresetsCheck creates a check over the presets matched by patterns.
func NewPresetsCheck(patterns []string, vars map[string]any) *PresetsCheck {
	return &PresetsCheck{
		patterns: patterns,
		vars:     vars,
		rules:    lint.DefaultRules(),
	}
}

func (c *PresetsCheck) Name() string {
	return "Presets"
}

func (c *PresetsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if len(c.patterns) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "Patterns",
			Status: StatusWarn,
			Detail: "no presets.patterns configured",
		})
		return result
	}

	paths, err := preset.Expand(c.patterns)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Expand patterns",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if len(paths) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "Patterns",
			Status: StatusWarn,
			Detail: "no preset files found",
		})
		return result
	}

	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		p, err := preset.Load(path, c.vars)
		if err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  path,
				Status: StatusFail,
				Detail: err.Error(),
			})
			continue
		}

		if prev, ok := seen[p.Name]; ok {
			result.Items = append(result.Items, CheckItem{
				Label:  path,
				Status: StatusFail,
				Detail: fmt.Sprintf("duplicate preset name %q (also %s)", p.Name, prev),
			})
			continue
		}
		seen[p.Name] = path

		warned, failed := lint.Summary(lint.Run(p.Options, c.rules))
		switch {
		case failed > 0:
			result.Items = append(result.Items, CheckItem{
				Label:  path,
				Status: StatusFail,
				Detail: fmt.Sprintf("%d lint failure(s), %d warning(s); run popwire lint", failed, warned),
			})
		case warned > 0:
			result.Items = append(result.Items, CheckItem{
				Label:  path,
				Status: StatusWarn,
				Detail: fmt.Sprintf("%d lint warning(s); run popwire lint", warned),
			})
		default:
			result.Items = append(result.Items, CheckItem{
				Label:  path,
				Status: StatusPass,
			})
		}
	}

	return result
}
