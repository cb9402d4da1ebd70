package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	t.Run("iterates in first-insertion order", func(t *testing.T) {
		s := newOrderedSet()
		assert.True(t, s.add("b"))
		assert.True(t, s.add("a"))
		assert.True(t, s.add("c"))
		assert.Equal(t, []string{"b", "a", "c"}, s.values())
	})

	t.Run("re-adding neither duplicates nor moves a member", func(t *testing.T) {
		s := newOrderedSet()
		s.add("a")
		s.add("b")
		assert.False(t, s.add("a"))
		assert.Equal(t, []string{"a", "b"}, s.values())
		assert.Equal(t, 2, s.len())
	})

	t.Run("remove keeps the relative order of the rest", func(t *testing.T) {
		s := newOrderedSet()
		for _, id := range []string{"a", "b", "c", "d"} {
			s.add(id)
		}
		assert.True(t, s.remove("b"))
		assert.False(t, s.remove("b"))
		assert.Equal(t, []string{"a", "c", "d"}, s.values())
		assert.False(t, s.has("b"))

		// Positions must stay usable after the reindex.
		assert.True(t, s.remove("d"))
		assert.Equal(t, []string{"a", "c"}, s.values())
	})

	t.Run("values returns a copy", func(t *testing.T) {
		s := newOrderedSet()
		s.add("a")
		s.add("b")
		vals := s.values()
		vals[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, s.values())
	})
}
