package matcha

type isPolicy[A any] struct{}

func (isPolicy[A]) matches(expected Matcher[A], actual A) bool {
	return expected.Matches(actual)
}

func (isPolicy[A]) describe(expected Matcher[A]) string {
	return "is " + expected.String()
}

// Is decorates a matcher without changing its outcome; it only reads better:
// AssertThat(t, x, Is(EqualTo(5))).
func Is[A any](m Matcher[A]) Matcher[A] {
	return matcher[Matcher[A], A]{p: isPolicy[A]{}, expected: m}
}

type isNot[A any] struct{}

func (isNot[A]) matches(expected Matcher[A], actual A) bool {
	return !expected.Matches(actual)
}

func (isNot[A]) describe(expected Matcher[A]) string {
	return "not " + expected.String()
}

// Not negates a matcher.
func Not[A any](m Matcher[A]) Matcher[A] {
	return matcher[Matcher[A], A]{p: isNot[A]{}, expected: m}
}

// pair is the ordered combinator payload. Both members are always evaluated;
// sub-matchers must not depend on the other being skipped.
type pair[A any] struct {
	a Matcher[A]
	b Matcher[A]
}

type allOf[A any] struct{}

func (allOf[A]) matches(expected pair[A], actual A) bool {
	ra := expected.a.Matches(actual)
	rb := expected.b.Matches(actual)
	return ra && rb
}

func (allOf[A]) describe(expected pair[A]) string {
	return "all of " + expected.a.String() + " and " + expected.b.String()
}

// AllOf matches when both a and b match.
func AllOf[A any](a, b Matcher[A]) Matcher[A] {
	return matcher[pair[A], A]{p: allOf[A]{}, expected: pair[A]{a: a, b: b}}
}

type anyOf[A any] struct{}

func (anyOf[A]) matches(expected pair[A], actual A) bool {
	ra := expected.a.Matches(actual)
	rb := expected.b.Matches(actual)
	return ra || rb
}

func (anyOf[A]) describe(expected pair[A]) string {
	return "any of " + expected.a.String() + " or " + expected.b.String()
}

// AnyOf matches when either a or b matches.
func AnyOf[A any](a, b Matcher[A]) Matcher[A] {
	return matcher[pair[A], A]{p: anyOf[A]{}, expected: pair[A]{a: a, b: b}}
}
