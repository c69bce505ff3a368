package tss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a YAML manifest naming the stylesheets a composition root loads
// at startup, in cascade order:
//
//	stylesheets:
//	  - base.tss
//	  - themes/*.tss
//
// Entries are file paths or doublestar glob patterns, resolved relative to
// the manifest's directory.
type Theme struct {
	Stylesheets []string `yaml:"stylesheets"`
}

// LoadTheme reads a theme manifest and loads its stylesheets in listed order
// (glob entries in lexical path order). Stylesheets that fail to parse are
// diagnosed and skipped, per-file fail-soft; manifest read or decode errors
// and stylesheet I/O errors are returned.
func (s *Store) LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("decode theme %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, entry := range theme.Stylesheets {
		resolved := entry
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		if strings.ContainsAny(entry, "*?[{") {
			if err := s.AddGlob(resolved); err != nil {
				return err
			}
			continue
		}
		if err := s.addFailSoft(resolved); err != nil {
			return err
		}
	}
	return nil
}

// LoadTheme loads a theme manifest into the process-wide store.
func LoadTheme(path string) error {
	return defaultStore.LoadTheme(path)
}
