package matcha

import (
	"slices"

	"github.com/uberbrodt/fungo/fun"

	"github.com/uberbrodt/matcha-go/matcha/format"
)

type isContaining[E comparable] struct{}

func (isContaining[E]) matches(expected E, actual []E) bool {
	return slices.Contains(actual, expected)
}

func (isContaining[E]) describe(expected E) string {
	return "contains " + format.Value(expected)
}

// Contains matches collections holding at least one element equal to item.
// Linear scan, first match wins; an empty collection never matches.
func Contains[E comparable](item E) Matcher[[]E] {
	return matcher[E, []E]{p: isContaining[E]{}, expected: item}
}

type everyItem[E any] struct{}

func (everyItem[E]) matches(expected Matcher[E], actual []E) bool {
	// every element is evaluated; nothing may rely on the scan stopping at
	// the first failure
	return fun.Reduce(actual, true, func(v E, acc bool) bool {
		ok := expected.Matches(v)
		return acc && ok
	})
}

func (everyItem[E]) describe(expected Matcher[E]) string {
	return "every item " + expected.String()
}

// EveryItem matches collections whose elements all satisfy m. An empty
// collection matches vacuously.
func EveryItem[E any](m Matcher[E]) Matcher[[]E] {
	return matcher[Matcher[E], []E]{p: everyItem[E]{}, expected: m}
}

type hasKey[K comparable, V any] struct{}

func (hasKey[K, V]) matches(expected K, actual map[K]V) bool {
	for k := range actual {
		if k == expected {
			return true
		}
	}
	return false
}

func (hasKey[K, V]) describe(expected K) string {
	return "has key " + format.Value(expected)
}

// HasKey matches maps containing key, whatever the value. The value type
// never appears in an argument, so both type arguments are spelled out:
// matcha.HasKey[string, int]("k").
func HasKey[K comparable, V any](key K) Matcher[map[K]V] {
	return matcher[K, map[K]V]{p: hasKey[K, V]{}, expected: key}
}

type entry[K, V comparable] struct {
	key   K
	value V
}

type hasEntry[K, V comparable] struct{}

func (hasEntry[K, V]) matches(expected entry[K, V], actual map[K]V) bool {
	v, ok := actual[expected.key]
	return ok && v == expected.value
}

func (hasEntry[K, V]) describe(expected entry[K, V]) string {
	return "contains (" + format.Value(expected.key) + ", " + format.Value(expected.value) + ")"
}

// HasEntry matches maps containing the exact key/value pair.
func HasEntry[K, V comparable](key K, value V) Matcher[map[K]V] {
	return matcher[entry[K, V], map[K]V]{
		p:        hasEntry[K, V]{},
		expected: entry[K, V]{key: key, value: value},
	}
}

type isIn[E comparable] struct{}

func (isIn[E]) matches(expected []E, actual E) bool {
	return slices.Contains(expected, actual)
}

func (isIn[E]) describe(expected []E) string {
	return "one of " + format.Slice(expected)
}

// In matches values that occur among items. Operand roles are the inverse of
// [Contains]: here the expectation is the collection and the actual value is
// the scalar.
func In[E comparable](items ...E) Matcher[E] {
	return matcher[[]E, E]{p: isIn[E]{}, expected: items}
}
