package tss_test

import (
	"path/filepath"
	"testing"

	"bennypowers.dev/tss/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	t.Run("loads stylesheets in listed order", func(t *testing.T) {
		store, _ := newStore(t)
		dir := t.TempDir()
		writeFile(t, dir, "base.tss", "item { fg: red; bg: black; }")
		writeFile(t, dir, "dark.tss", "item { fg: white; }")
		manifest := writeFile(t, dir, "theme.yaml", `
stylesheets:
  - base.tss
  - dark.tss
`)

		require.NoError(t, store.LoadTheme(manifest))

		resolved := store.GetStyle("item")
		require.NotNil(t, resolved.Fg)
		assert.Equal(t, style.Named(style.White), *resolved.Fg, "later manifest entry wins")
		require.NotNil(t, resolved.Bg)
		assert.Equal(t, style.Named(style.Black), *resolved.Bg)
	})

	t.Run("glob entries resolve relative to the manifest", func(t *testing.T) {
		store, _ := newStore(t)
		dir := t.TempDir()
		writeFile(t, dir, "themes/a.tss", "item { fg: red; }")
		writeFile(t, dir, "themes/b.tss", ".selected { add-modifier: bold; }")
		manifest := writeFile(t, dir, "theme.yaml", `
stylesheets:
  - themes/*.tss
`)

		require.NoError(t, store.LoadTheme(manifest))

		assert.Equal(t, 2, store.RuleCount())
	})

	t.Run("parse failures are diagnosed and skipped", func(t *testing.T) {
		store, buf := newStore(t)
		dir := t.TempDir()
		writeFile(t, dir, "bad.tss", "item { colour: red; }")
		writeFile(t, dir, "good.tss", "item { fg: red; }")
		manifest := writeFile(t, dir, "theme.yaml", `
stylesheets:
  - bad.tss
  - good.tss
`)

		require.NoError(t, store.LoadTheme(manifest))

		assert.Equal(t, 1, store.RuleCount())
		assert.Contains(t, buf.String(), "bad.tss")
	})

	t.Run("missing listed file is an error", func(t *testing.T) {
		store, _ := newStore(t)
		dir := t.TempDir()
		manifest := writeFile(t, dir, "theme.yaml", `
stylesheets:
  - absent.tss
`)

		assert.Error(t, store.LoadTheme(manifest))
	})

	t.Run("malformed manifest is an error", func(t *testing.T) {
		store, _ := newStore(t)
		dir := t.TempDir()
		manifest := writeFile(t, dir, "theme.yaml", "stylesheets: {not: a list}")

		assert.Error(t, store.LoadTheme(manifest))
	})

	t.Run("missing manifest is an error", func(t *testing.T) {
		store, _ := newStore(t)
		assert.Error(t, store.LoadTheme(filepath.Join(t.TempDir(), "absent.yaml")))
	})
}
