package reference

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// fieldSource exposes field names plus descriptions to fuzzy matching.
type fieldSource []Field

func (s fieldSource) String(i int) string { return s[i].Name }
func (s fieldSource) Len() int            { return len(s) }

// Search returns fields whose name fuzzy-matches query, best match first.
// An empty query returns the whole catalog. When no name matches, fields
// whose description contains query are returned in catalog order.
func Search(query string) []Field {
	fields := Catalog()
	query = strings.TrimSpace(query)
	if query == "" {
		return fields
	}

	matches := fuzzy.FindFrom(query, fieldSource(fields))
	if len(matches) > 0 {
		out := make([]Field, len(matches))
		for i, m := range matches {
			out[i] = fields[m.Index]
		}
		return out
	}

	lower := strings.ToLower(query)
	var out []Field
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f.Description), lower) {
			out = append(out, f)
		}
	}
	return out
}
