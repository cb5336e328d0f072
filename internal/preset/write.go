package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/popwire/internal/core/validate"
	"github.com/hay-kot/popwire/pkg/popup"
)

// Write saves opts as a YAML preset at path. Hooks are not written. The file
// is replaced atomically.
func Write(path string, opts popup.Options) error {
	if err := validate.PresetName(NameFromPath(path)); err != nil {
		return err
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("presets are written as yaml, got extension %q", ext)
	}

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
