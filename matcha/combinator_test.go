package matcha

import (
	"testing"

	"gotest.tools/v3/assert"
)

// countingMatcher records how often it is evaluated; shared with the
// collection tests.
type countingMatcher struct {
	calls *int
	ok    bool
}

func (c countingMatcher) Matches(int) bool {
	*c.calls++
	return c.ok
}

func (c countingMatcher) String() string {
	return "counting"
}

func TestIs_Passthrough(t *testing.T) {
	assert.Assert(t, Is(EqualTo(5)).Matches(5))
	assert.Assert(t, !Is(EqualTo(5)).Matches(6))

	assert.Equal(t, Is(EqualTo(5)).String(), "is 5")
}

func TestNot_Negation(t *testing.T) {
	assert.Assert(t, Not(EqualTo(5)).Matches(6))
	assert.Assert(t, !Not(EqualTo(5)).Matches(5))

	assert.Equal(t, Not(EqualTo(5)).String(), "not 5")
}

func TestNot_DoubleNegation(t *testing.T) {
	m := EqualTo(5)

	for _, actual := range []int{4, 5, 6} {
		assert.Equal(t, Not(Not(m)).Matches(actual), m.Matches(actual))
	}
}

func TestAllOf_TruthTable(t *testing.T) {
	m := AllOf(GreaterThan(0), LessThan(10))

	for _, tc := range []struct {
		actual int
		want   bool
	}{
		{actual: 5, want: true},
		{actual: -1, want: false},
		{actual: 11, want: false},
		{actual: 0, want: false},
	} {
		assert.Equal(t, m.Matches(tc.actual), tc.want, "actual=%d", tc.actual)
	}
}

func TestAnyOf_TruthTable(t *testing.T) {
	m := AnyOf(LessThan(0), GreaterThan(10))

	for _, tc := range []struct {
		actual int
		want   bool
	}{
		{actual: -5, want: true},
		{actual: 15, want: true},
		{actual: 5, want: false},
	} {
		assert.Equal(t, m.Matches(tc.actual), tc.want, "actual=%d", tc.actual)
	}
}

func TestAllOf_EvaluatesBothSides(t *testing.T) {
	calls := 0
	failing := countingMatcher{calls: &calls, ok: false}

	assert.Assert(t, !AllOf[int](failing, failing).Matches(1))
	assert.Equal(t, calls, 2)
}

func TestAnyOf_EvaluatesBothSides(t *testing.T) {
	calls := 0
	passing := countingMatcher{calls: &calls, ok: true}

	assert.Assert(t, AnyOf[int](passing, passing).Matches(1))
	assert.Equal(t, calls, 2)
}

func TestCombinators_Describe(t *testing.T) {
	assert.Equal(t, AllOf(EqualTo(1), EqualTo(2)).String(), "all of 1 and 2")
	assert.Equal(t, AnyOf(EqualTo(1), EqualTo(2)).String(), "any of 1 or 2")
}

func TestCombinators_Nested(t *testing.T) {
	m := AllOf(Not(EqualTo(0)), AnyOf(In(1, 2, 3), GreaterThan(10)))

	assert.Assert(t, m.Matches(2))
	assert.Assert(t, m.Matches(11))
	assert.Assert(t, !m.Matches(0))
	assert.Assert(t, !m.Matches(7))
}
