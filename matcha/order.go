package matcha

import (
	"golang.org/x/exp/constraints"

	"github.com/uberbrodt/matcha-go/matcha/format"
)

type isLessThan[T constraints.Ordered] struct{}

func (isLessThan[T]) matches(expected, actual T) bool {
	return actual < expected
}

func (isLessThan[T]) describe(expected T) string {
	return "a value less than " + format.Value(expected)
}

// LessThan matches values strictly less than value.
func LessThan[T constraints.Ordered](value T) Matcher[T] {
	return matcher[T, T]{p: isLessThan[T]{}, expected: value}
}

type isGreaterThan[T constraints.Ordered] struct{}

func (isGreaterThan[T]) matches(expected, actual T) bool {
	return actual > expected
}

func (isGreaterThan[T]) describe(expected T) string {
	return "a value greater than " + format.Value(expected)
}

// GreaterThan matches values strictly greater than value.
func GreaterThan[T constraints.Ordered](value T) Matcher[T] {
	return matcher[T, T]{p: isGreaterThan[T]{}, expected: value}
}
