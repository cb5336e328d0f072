package preset

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds how many presets Glob reads at once.
const maxConcurrentLoads = 8

// Expand resolves patterns to a sorted, de-duplicated list of preset files.
// Patterns without glob characters are returned as is, so a missing literal
// path surfaces as a read error instead of silently matching nothing.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !hasGlobChars(pattern) {
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithNoFollow(), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if hasExtension(m) {
				add(m)
			}
		}
	}

	slices.Sort(paths)
	return paths, nil
}

// Glob loads every preset matched by patterns concurrently. Presets are
// returned sorted by path. Two files with the same name are an error.
func Glob(ctx context.Context, patterns []string, vars map[string]any) ([]Preset, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}

	presets := make([]Preset, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Load(path, vars)
			if err != nil {
				return err
			}
			presets[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(presets))
	for _, p := range presets {
		if prev, ok := byName[p.Name]; ok {
			return nil, fmt.Errorf("duplicate preset name %q: %s and %s", p.Name, prev, p.Path)
		}
		byName[p.Name] = p.Path
	}

	return presets, nil
}

func hasGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
