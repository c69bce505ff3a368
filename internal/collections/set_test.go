package collections_test

import (
	"testing"

	"bennypowers.dev/tss/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Equal(t, 0, len(s))
	})

	t.Run("set with initial values", func(t *testing.T) {
		s := collections.NewSet("selected", "downloading")
		assert.Equal(t, 2, len(s))
		assert.True(t, s.Has("selected"))
		assert.True(t, s.Has("downloading"))
	})

	t.Run("duplicates are deduplicated", func(t *testing.T) {
		s := collections.NewSet("a", "b", "a", "b")
		assert.Equal(t, 2, len(s))
	})
}

func TestSetAdd(t *testing.T) {
	s := collections.NewSet[string]()
	s.Add("a", "b")
	s.Add("a")
	assert.Equal(t, 2, len(s))
	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
}

func TestSetHas(t *testing.T) {
	s := collections.NewSet("red", "green", "blue")
	assert.True(t, s.Has("red"))
	assert.False(t, s.Has("yellow"))
	assert.False(t, s.Has(""))
}

func TestSetHasAll(t *testing.T) {
	s := collections.NewSet("a", "b", "c")

	t.Run("subset", func(t *testing.T) {
		assert.True(t, s.HasAll("a", "b"))
	})

	t.Run("order independent", func(t *testing.T) {
		assert.True(t, s.HasAll("b", "a"))
	})

	t.Run("missing member", func(t *testing.T) {
		assert.False(t, s.HasAll("a", "d"))
	})

	t.Run("empty argument list is vacuously true", func(t *testing.T) {
		assert.True(t, s.HasAll())
		assert.True(t, collections.NewSet[string]().HasAll())
	})
}

func TestSetMembers(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		members := collections.NewSet[string]().Members()
		assert.NotNil(t, members)
		assert.Empty(t, members)
	})

	t.Run("non-empty set", func(t *testing.T) {
		members := collections.NewSet("a", "b").Members()
		assert.Len(t, members, 2)
		// order is not guaranteed
		assert.Contains(t, members, "a")
		assert.Contains(t, members, "b")
	})
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "[]", collections.NewSet[string]().String())
	assert.Equal(t, "[a]", collections.NewSet("a").String())
}
