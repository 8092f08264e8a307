// Package mockcompat converts matchers to and from the gomock Matcher
// contract, so a matcha matcher can stand in for an expected mock argument
// and a gomock matcher can be asserted with matcha entry points.
package mockcompat

import (
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/uberbrodt/matcha-go/matcha"
	"github.com/uberbrodt/matcha-go/matcha/format"
)

// Wrap adapts a typed matcher into a [gomock.Matcher]. A value of any other
// dynamic type does not match.
func Wrap[A any](m matcha.Matcher[A]) gomock.Matcher {
	return wrapped[A]{m: m}
}

type wrapped[A any] struct {
	m matcha.Matcher[A]
}

func (w wrapped[A]) Matches(x any) bool {
	a, ok := x.(A)
	return ok && w.m.Matches(a)
}

func (w wrapped[A]) String() string {
	return w.m.String()
}

// Got implements the gomock GotFormatter extension so failure messages print
// the received value the way matcha diagnostics do.
func (w wrapped[A]) Got(got any) string {
	return fmt.Sprintf("%s (%T)", format.Value(got), got)
}

// Matcher adapts any gomock-shaped matcher into a [matcha.Matcher]. The
// result is untyped on the actual side, as gomock matchers are.
func Matcher(gm gomock.Matcher) matcha.Matcher[any] {
	return adapted{gm: gm}
}

type adapted struct {
	gm gomock.Matcher
}

func (a adapted) Matches(x any) bool {
	return a.gm.Matches(x)
}

func (a adapted) String() string {
	return a.gm.String()
}
