package parser_test

import (
	"testing"

	"bennypowers.dev/tss/internal/collections"
	"bennypowers.dev/tss/internal/parser"
	"bennypowers.dev/tss/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorOf(t *testing.T, source string) parser.Selector {
	t.Helper()
	return parseOne(t, source+" {}").Selector
}

func TestSelectorMatches(t *testing.T) {
	t.Run("class subset matches regardless of order", func(t *testing.T) {
		sel := selectorOf(t, ".a.b")
		assert.True(t, sel.Matches("anything", collections.NewSet("b", "a", "c")))
	})

	t.Run("missing class does not match", func(t *testing.T) {
		sel := selectorOf(t, ".a.b")
		assert.False(t, sel.Matches("anything", collections.NewSet("a")))
	})

	t.Run("element must match exactly when named", func(t *testing.T) {
		sel := selectorOf(t, "playlist-item.selected")
		assert.True(t, sel.Matches("playlist-item", collections.NewSet("selected")))
		assert.False(t, sel.Matches("playlist-list", collections.NewSet("selected")))
	})

	t.Run("selector with no element matches any element", func(t *testing.T) {
		sel := selectorOf(t, ".selected")
		assert.True(t, sel.Matches("a", collections.NewSet("selected")))
		assert.True(t, sel.Matches("b", collections.NewSet("selected")))
	})

	t.Run("empty selector matches everything", func(t *testing.T) {
		sel := selectorOf(t, "")
		assert.True(t, sel.Matches("anything", collections.NewSet[string]()))
	})

	t.Run("element only selector ignores query classes", func(t *testing.T) {
		sel := selectorOf(t, "item")
		assert.True(t, sel.Matches("item", collections.NewSet("extra", "classes")))
	})
}

func TestSelectorString(t *testing.T) {
	a := selectorOf(t, "item.a.b")
	assert.Equal(t, "item.a.b", a.String())
	b := selectorOf(t, ".a")
	assert.Equal(t, ".a", b.String())
	c := selectorOf(t, "")
	assert.Equal(t, "*", c.String())
}

func TestStylesheetResolve(t *testing.T) {
	source := `
		item { fg: red; bg: black; }
		item.selected { fg: blue; }
		item { add-modifier: bold; }
	`
	sheet, perr := parser.Parse(source)
	require.Nil(t, perr)

	t.Run("later matching rules override explicitly set fields", func(t *testing.T) {
		resolved := sheet.Resolve("item", collections.NewSet("selected"), style.Style{})
		require.NotNil(t, resolved.Fg)
		assert.Equal(t, style.Named(style.Blue), *resolved.Fg)
	})

	t.Run("fields a later rule leaves unset are retained", func(t *testing.T) {
		resolved := sheet.Resolve("item", collections.NewSet("selected"), style.Style{})
		require.NotNil(t, resolved.Bg)
		assert.Equal(t, style.Named(style.Black), *resolved.Bg)
	})

	t.Run("non matching rules contribute nothing", func(t *testing.T) {
		resolved := sheet.Resolve("item", collections.NewSet[string](), style.Style{})
		require.NotNil(t, resolved.Fg)
		assert.Equal(t, style.Named(style.Red), *resolved.Fg)
		assert.True(t, resolved.AddModifiers.Contains(style.Bold))
	})

	t.Run("no match yields the accumulator unchanged", func(t *testing.T) {
		resolved := sheet.Resolve("other", collections.NewSet[string](), style.Style{})
		assert.Equal(t, style.Style{}, resolved)
	})
}
