// Package tss resolves terminal-UI styles from CSS-like stylesheets.
//
// Stylesheets pair selectors (an optional element name plus class tags) with
// rule bodies that set foreground/background colors and modifier flags:
//
//	playlist-item.selected {
//		fg: #ffaa00;
//		add-modifier: bold;
//	}
//
// A Store holds stylesheets in load order, and GetStyle resolves the net
// style for an (element, class-set) query by folding every matching rule —
// stylesheets in load order, rules in declaration order — into one Style.
// There is no specificity weighting: later explicitly-set fields win, and
// fields a later rule leaves unset do not disturb earlier results.
package tss

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"bennypowers.dev/tss/internal/collections"
	"bennypowers.dev/tss/internal/diagnostics"
	"bennypowers.dev/tss/internal/log"
	"bennypowers.dev/tss/internal/parser"
	"bennypowers.dev/tss/style"

	"github.com/bmatcuk/doublestar/v4"
)

// Store is an ordered, append-only collection of parsed stylesheets. It is
// safe for concurrent use: loading takes the writer side of one RWMutex and
// queries take the reader side, so arbitrarily many GetStyle callers never
// block each other. File I/O and parsing happen before the lock is taken.
type Store struct {
	mu     sync.RWMutex
	sheets []*parser.Stylesheet
	errw   io.Writer
}

// New creates an empty Store reporting diagnostics to os.Stderr.
func New() *Store {
	return &Store{errw: os.Stderr}
}

// SetErrorWriter redirects the diagnostics a failed parse renders (default
// os.Stderr).
func (s *Store) SetErrorWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errw = w
}

func (s *Store) errorWriter() io.Writer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errw
}

// AddStylesheet reads and parses the stylesheet at path. On success the
// stylesheet is appended to the store; on failure a diagnostic is rendered
// to the error writer, the error is returned, and the file contributes
// nothing. Earlier and later valid stylesheets are unaffected.
func (s *Store) AddStylesheet(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	return s.AddSource(path, string(data))
}

// AddSource parses stylesheet text from memory, with name standing in for a
// file path in diagnostics. Same contract as AddStylesheet.
func (s *Store) AddSource(name, source string) error {
	sheet, perr := parser.Parse(source)
	if perr != nil {
		diagnostics.Render(s.errorWriter(), name, source, perr)
		log.Debug("rejected stylesheet %s: %s", name, perr.Message())
		return fmt.Errorf("parse %s: %w", name, perr)
	}
	s.mu.Lock()
	s.sheets = append(s.sheets, sheet)
	s.mu.Unlock()
	log.Info("loaded stylesheet %s: %d rules", name, sheet.Len())
	return nil
}

// AddGlob loads every stylesheet matching pattern (doublestar syntax, so
// "themes/**/*.tss" works) in lexical path order. Files that fail to parse
// are diagnosed and skipped; I/O errors abort the load.
func (s *Store) AddGlob(pattern string) error {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := s.addFailSoft(path); err != nil {
			return err
		}
	}
	return nil
}

// addFailSoft loads one file, swallowing parse failures (already diagnosed)
// but propagating I/O errors.
func (s *Store) addFailSoft(path string) error {
	err := s.AddStylesheet(path)
	var perr *parser.Error
	if errors.As(err, &perr) {
		return nil
	}
	return err
}

// GetStyle resolves the net style for an element and its class tags by
// cascading every loaded stylesheet. It is total and side-effect-free: with
// an empty store or no matching rule it returns the all-unset default
// style, never an error.
func (s *Store) GetStyle(identifier string, classes ...string) style.Style {
	classSet := collections.NewSet(classes...)
	var resolved style.Style
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sheet := range s.sheets {
		resolved = sheet.Resolve(identifier, classSet, resolved)
	}
	return resolved
}

// RuleCount returns the total number of rules across all loaded
// stylesheets.
func (s *Store) RuleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sheet := range s.sheets {
		n += sheet.Len()
	}
	return n
}

// defaultStore backs the package-level convenience functions. It is
// init-once and append-only for the life of the process; there is no
// teardown beyond process exit. Applications that want an explicit handle
// should construct their own Store with New.
var defaultStore = New()

// Default returns the process-wide store used by the package-level
// functions.
func Default() *Store {
	return defaultStore
}

// AddStylesheet loads a stylesheet file into the process-wide store.
func AddStylesheet(path string) error {
	return defaultStore.AddStylesheet(path)
}

// GetStyle resolves a style against the process-wide store.
func GetStyle(identifier string, classes ...string) style.Style {
	return defaultStore.GetStyle(identifier, classes...)
}
