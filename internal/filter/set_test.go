package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_NilAllowsEverything(t *testing.T) {
	var s *Set[string]
	assert.True(t, s.Allows("anything"))
	assert.Nil(t, s.Values())
	assert.Equal(t, 0, s.Len())
}

func TestSet_EmptyAllowsNothing(t *testing.T) {
	s := NewSet[string]()
	assert.False(t, s.Allows(""))
	assert.False(t, s.Allows("Signac"))
	assert.Equal(t, 0, s.Len())
}

func TestSet_DedupesAndKeepsOrder(t *testing.T) {
	s := NewSet("b", "a", "b", "c")
	assert.Equal(t, []string{"b", "a", "c"}, s.Values())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Allows("a"))
	assert.False(t, s.Allows("d"))

	vals := s.Values()
	vals[0] = "z"
	assert.Equal(t, "b", s.Values()[0], "Values must return a copy")
}
