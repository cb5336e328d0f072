// Package lint flags option combinations the engine accepts but probably
// does not do what the author meant. Findings are advisory: lint never
// changes options and projection never consults it.
package lint

import (
	"cmp"
	"slices"

	"github.com/hay-kot/popwire/pkg/popup"
)

// Severity of a finding.
type Severity int

const (
	SeverityWarn Severity = iota
	SeverityFail
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one problem reported by a Rule.
type Finding struct {
	Rule     string   `json:"rule"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Rule inspects options and reports findings. Rules must not modify o.
type Rule interface {
	Name() string
	Check(o popup.Options) []Finding
}

// DefaultRules returns every built-in rule.
func DefaultRules() []Rule {
	return []Rule{
		InputRule{},
		ContentRule{},
		FocusRule{},
		ProgressRule{},
		TimerRule{},
		ImageRule{},
		ToastRule{},
		CloseRule{},
	}
}

// Run applies rules to o and returns the findings ordered by field, then rule.
func Run(o popup.Options, rules []Rule) []Finding {
	var out []Finding
	for _, r := range rules {
		out = append(out, r.Check(o)...)
	}
	slices.SortStableFunc(out, func(a, b Finding) int {
		return cmp.Or(cmp.Compare(a.Field, b.Field), cmp.Compare(a.Rule, b.Rule))
	})
	return out
}

// Summary counts warnings and failures.
func Summary(findings []Finding) (warned, failed int) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityWarn:
			warned++
		case SeverityFail:
			failed++
		}
	}
	return
}

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }
