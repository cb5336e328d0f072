package reference

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders fields as one table per group, in group order.
func Markdown(fields []Field) string {
	byGroup := make(map[Group][]Field)
	for _, f := range fields {
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}

	var b strings.Builder
	for _, g := range Groups {
		list := byGroup[g]
		if len(list) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", g)
		b.WriteString("| Option | Kind | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, f := range list {
			desc := f.Description
			if len(f.Values) > 0 {
				desc += " One of: " + strings.Join(f.Values, ", ") + "."
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", f.Name, f.Kind, escapeCell(desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render renders markdown for a terminal of the given width.
func Render(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
