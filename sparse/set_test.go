package sparse_test

import (
	"sort"
	"testing"

	"github.com/rastvel/tether/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_AddContains verifies membership after insertion and that adding
// a present element does not grow the set.
func TestSet_AddContains(t *testing.T) {
	s := sparse.NewSet[string](0)

	s.Add("a")
	s.Add("a")

	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	assert.Equal(t, 1, s.Len(), "duplicate Add must be a no-op")
}

// TestSet_Remove verifies removal of present and absent elements.
func TestSet_Remove(t *testing.T) {
	s := sparse.NewSet[int](2)
	s.Add(1)
	s.Add(2)

	s.Remove(1)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 1, s.Len())

	s.Remove(99) // absent: must be a silent no-op
	assert.Equal(t, 1, s.Len())
}

// TestSet_Values verifies that Values is a snapshot unaffected by later
// mutation of the set.
func TestSet_Values(t *testing.T) {
	s := sparse.NewSet[int](0)
	s.Add(3)
	s.Add(1)
	s.Add(2)

	vals := s.Values()
	s.Remove(1)

	sort.Ints(vals)
	assert.Equal(t, []int{1, 2, 3}, vals, "snapshot must keep elements removed later")
}

// TestSet_Drain verifies that Drain visits every element exactly once and
// leaves the set empty, and that re-entrant mutation of OTHER structures
// inside the callback is safe.
func TestSet_Drain(t *testing.T) {
	s := sparse.NewSet[int](0)
	for i := 0; i < 10; i++ {
		s.Add(i)
	}

	other := sparse.NewMap[int, bool]()
	seen := 0
	s.Drain(func(e int) {
		seen++
		other.Insert(e, true) // mutating a sibling structure mid-drain
		assert.False(t, s.Contains(e), "element must be detached before fn sees it")
	})

	assert.Equal(t, 10, seen, "Drain must visit every element")
	assert.Equal(t, 0, s.Len(), "set must be empty after Drain")
	assert.Equal(t, 10, other.Len())
}

// TestSet_Clone verifies deep-copy independence.
func TestSet_Clone(t *testing.T) {
	s := sparse.NewSet[string](0)
	s.Add("x")

	c := s.Clone()
	require.NotNil(t, c)
	c.Add("y")
	s.Remove("x")

	assert.True(t, c.Contains("x"), "clone must keep elements removed from the original")
	assert.False(t, s.Contains("y"), "original must not see clone insertions")
}

// TestSet_NilReads verifies that read methods treat a nil *Set as empty
// instead of panicking.
func TestSet_NilReads(t *testing.T) {
	var s *sparse.Set[int]

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.Nil(t, s.Values())
	s.ForEach(func(int) { t.Fatal("nil set must have nothing to visit") })
	assert.Nil(t, s.Clone(), "clone of nil is nil")
}
