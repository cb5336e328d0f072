// Package preset loads popup options from YAML or JSON files. Presets are Go
// templates rendered with user variables before they are decoded, so one file
// can serve several brands or locales.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/popwire/internal/core/validate"
	"github.com/hay-kot/popwire/pkg/popup"
	"github.com/hay-kot/popwire/pkg/tmpl"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".yaml", ".yml", ".json"}

// Preset is a named set of popup options read from disk.
type Preset struct {
	Name    string
	Path    string
	Options popup.Options
}

// Record projects the preset's options.
func (p Preset) Record() popup.Record {
	return popup.Project(p.Options)
}

// NameFromPath derives a preset name from its file name.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the preset at path, renders it with vars and decodes it.
func Load(path string, vars map[string]any) (Preset, error) {
	name := NameFromPath(path)
	if err := validate.PresetName(name); err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", path, criterio.NewFieldErrors("name", err))
	}

	if !hasExtension(path) {
		return Preset{}, fmt.Errorf("preset %s: unsupported extension %q", path, filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}

	opts, err := Decode(raw, vars)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", path, err)
	}

	return Preset{Name: name, Path: path, Options: opts}, nil
}

// Decode renders raw as a template with vars and decodes the result. YAML
// and JSON are both accepted. Unknown keys are errors. A bare number timer
// is read as milliseconds, matching the engine; strings such as "3s" are
// parsed as durations.
func Decode(raw []byte, vars map[string]any) (popup.Options, error) {
	if vars == nil {
		vars = map[string]any{}
	}

	rendered, err := tmpl.Render(string(raw), vars)
	if err != nil {
		return popup.Options{}, fmt.Errorf("render: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		return popup.Options{}, fmt.Errorf("parse: %w", err)
	}

	var opts popup.Options
	if doc.Kind == 0 {
		return opts, nil
	}

	if err := requireMapping(&doc); err != nil {
		return popup.Options{}, err
	}

	dec := yaml.NewDecoder(strings.NewReader(rendered))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return popup.Options{}, fmt.Errorf("decode: %w", err)
	}

	return opts, nil
}

func requireMapping(doc *yaml.Node) error {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("preset must be a mapping, got %s", kindName(root.Kind))
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

func hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
