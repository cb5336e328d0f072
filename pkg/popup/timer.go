package popup

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Millis is an auto-close timer. JSON carries it as a number of
// milliseconds, the engine's unit. Decoding accepts either a number of
// milliseconds or a duration string such as "3s"; YAML is written as a
// duration string.
type Millis time.Duration

// Duration returns a pointer to d as a timer.
func Duration(d time.Duration) *Millis {
	m := Millis(d)
	return &m
}

// Duration returns m as a time.Duration.
func (m Millis) Duration() time.Duration { return time.Duration(m) }

// Milliseconds returns m in whole milliseconds, truncated.
func (m Millis) Milliseconds() int64 { return time.Duration(m).Milliseconds() }

func (m Millis) String() string { return time.Duration(m).String() }

func (m Millis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.Milliseconds(), 10), nil
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return m.parse(s)
	}
	return m.parse(string(b))
}

func (m Millis) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *Millis) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timer must be milliseconds or a duration", node.Line)
	}
	return m.parse(node.Value)
}

// parse reads a bare number as milliseconds and anything else as a Go
// duration string.
func (m *Millis) parse(s string) error {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("invalid timer %q", s)
		}
		*m = Millis(math.Round(ms * float64(time.Millisecond)))
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid timer %q: want milliseconds or a duration such as 3s", s)
	}
	*m = Millis(d)
	return nil
}
