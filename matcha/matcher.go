package matcha

// A Matcher is a composed, reusable predicate over an actual value of type A.
//
// String describes the expectation; it is the text printed after "Expected:"
// in failure diagnostics. The interface is the generic cousin of the one
// gomock uses, so matchers can cross into mock expectations via
// [github.com/uberbrodt/matcha-go/matcha/x/mockcompat].
type Matcher[A any] interface {
	// Matches returns whether actual satisfies the matcher.
	Matches(actual A) bool

	// String describes what the matcher matches.
	String() string
}

// policy is one stateless matching rule: given the expected payload and the
// actual value it decides the outcome, and it renders the expectation as
// text. Policies carry no instance data; everything variable lives in the
// wrapper's expected payload, so a policy value can back any number of
// matchers.
type policy[E, A any] interface {
	matches(expected E, actual A) bool
	describe(expected E) string
}

// matcher binds a policy to its expected payload. It is the single wrapper
// behind every factory in this package. Both fields are fixed at
// construction, so matcher values are freely copyable and shareable.
type matcher[E, A any] struct {
	p        policy[E, A]
	expected E
}

func (m matcher[E, A]) Matches(actual A) bool {
	return m.p.matches(m.expected, actual)
}

func (m matcher[E, A]) String() string {
	return m.p.describe(m.expected)
}
