package matcha

import (
	gocmp "github.com/google/go-cmp/cmp"

	"github.com/uberbrodt/matcha-go/matcha/format"
)

type isEqual[T comparable] struct{}

func (isEqual[T]) matches(expected, actual T) bool {
	return expected == actual
}

func (isEqual[T]) describe(expected T) string {
	return format.Value(expected)
}

// EqualTo matches values equal to value under ==.
//
// The comparable bound makes the == capability a compile-time fact: a type
// without == is rejected by the compiler, never at runtime. For types with no
// == (slices, maps, structs containing either) use [DeepEqualTo]; the weaker
// structural comparison must be requested by name and is never substituted
// silently.
func EqualTo[T comparable](value T) Matcher[T] {
	return matcher[T, T]{p: isEqual[T]{}, expected: value}
}

type deepEqualArg[T any] struct {
	value T
	opts  []gocmp.Option
}

type isDeepEqual[T any] struct{}

func (isDeepEqual[T]) matches(expected deepEqualArg[T], actual T) bool {
	return gocmp.Equal(expected.value, actual, expected.opts...)
}

func (isDeepEqual[T]) describe(expected deepEqualArg[T]) string {
	return format.Value(expected.value)
}

// DeepEqualTo matches values structurally equal to value, compared with
// [gocmp.Equal]. Options are passed through, eg. [gocmp.AllowUnexported].
func DeepEqualTo[T any](value T, opts ...gocmp.Option) Matcher[T] {
	return matcher[deepEqualArg[T], T]{
		p:        isDeepEqual[T]{},
		expected: deepEqualArg[T]{value: value, opts: opts},
	}
}

// isNil's expected payload is the nil marker itself.
type isNil[T any] struct{}

func (isNil[T]) matches(expected, actual *T) bool {
	return actual == expected
}

func (isNil[T]) describe(_ *T) string {
	return "nil pointer"
}

// Nil matches a nil *T. The type argument is required since no value carries
// it: matcha.Nil[bytes.Buffer]().
func Nil[T any]() Matcher[*T] {
	return matcher[*T, *T]{p: isNil[T]{}, expected: nil}
}
