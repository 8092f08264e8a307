package matcha

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCloseTo_WithinDelta(t *testing.T) {
	m := CloseTo(1.0, 0.5)

	assert.Assert(t, m.Matches(1.0))
	assert.Assert(t, m.Matches(1.3))
	assert.Assert(t, m.Matches(0.7))
	assert.Assert(t, !m.Matches(2.0))
	assert.Assert(t, !m.Matches(0.0))
}

func TestCloseTo_Boundary(t *testing.T) {
	m := CloseTo(1.0, 0.5)

	// boundary is inclusive; one ulp past it is not
	assert.Assert(t, m.Matches(1.5))
	assert.Assert(t, m.Matches(0.5))
	assert.Assert(t, !m.Matches(1.5000001))
}

func TestCloseTo_Float32(t *testing.T) {
	m := CloseTo[float32](10, 0.25)

	assert.Assert(t, m.Matches(10.25))
	assert.Assert(t, !m.Matches(10.5))
}

func TestCloseTo_Describe(t *testing.T) {
	assert.Equal(t, CloseTo(1.0, 0.5).String(), "a numeric value within +/-0.5 of 1")
}
