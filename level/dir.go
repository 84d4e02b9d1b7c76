package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the level files directly inside dir, sorted by name.
// demo.json is skipped.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: list %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.EqualFold(e.Name(), "demo.json") {
			continue
		}
		if _, err := FormatOf(e.Name()); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Lookup finds the level called name (file name without extension) in dir.
func Lookup(dir, name string) (string, error) {
	paths, err := List(dir)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("level: %q: %w", name, os.ErrNotExist)
}
