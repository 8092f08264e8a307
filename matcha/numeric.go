package matcha

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type tolerance[T constraints.Float] struct {
	value T
	delta T
}

type isCloseTo[T constraints.Float] struct{}

func (isCloseTo[T]) matches(expected tolerance[T], actual T) bool {
	diff := actual - expected.value
	if diff < 0 {
		diff = -diff
	}
	return diff <= expected.delta
}

func (isCloseTo[T]) describe(expected tolerance[T]) string {
	return fmt.Sprintf("a numeric value within +/-%v of %v", expected.delta, expected.value)
}

// CloseTo matches floating-point values within delta of value, boundary
// included: |actual - value| <= delta.
func CloseTo[T constraints.Float](value, delta T) Matcher[T] {
	return matcher[tolerance[T], T]{
		p:        isCloseTo[T]{},
		expected: tolerance[T]{value: value, delta: delta},
	}
}
