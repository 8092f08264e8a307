package matcha

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLessThan_Ints(t *testing.T) {
	assert.Assert(t, LessThan(5).Matches(4))
	assert.Assert(t, !LessThan(5).Matches(5))
	assert.Assert(t, !LessThan(5).Matches(6))
}

func TestGreaterThan_Ints(t *testing.T) {
	assert.Assert(t, GreaterThan(5).Matches(6))
	assert.Assert(t, !GreaterThan(5).Matches(5))
}

func TestOrdering_Strings(t *testing.T) {
	assert.Assert(t, LessThan("b").Matches("a"))
	assert.Assert(t, GreaterThan("b").Matches("c"))
}

func TestOrdering_Describe(t *testing.T) {
	assert.Equal(t, LessThan(5).String(), "a value less than 5")
	assert.Equal(t, GreaterThan("b").String(), `a value greater than "b"`)
}
