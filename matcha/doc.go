// Package matcha provides composable matchers for test assertions.
//
// A [Matcher] is a reusable predicate over an actual value plus a textual
// description of what it matches. Matchers are built with the factory
// functions in this package (EqualTo, Contains, StartsWith, CloseTo, ...) and
// combined with Is, Not, AllOf and AnyOf. They are immutable values: building
// one never mutates anything, and the same matcher can be evaluated any
// number of times, from any goroutine.
//
// # Asserting
//
// The assertion entry points differ only in how the outcome is delivered:
//
//   - [AssertThat] reports failures through a [TestReporter] (satisfied by
//     *testing.T) and returns the outcome.
//   - [CheckThat] prints the diagnostic to stdout on failure and returns the
//     outcome.
//   - [VerifyThat] returns nil on a match and a [*MismatchError] carrying the
//     diagnostic otherwise.
//   - [AssertResult] accepts any [Output] strategy for callers that need a
//     different terminal behavior.
//
// All of them produce the same diagnostic text for the same inputs:
//
//	Expected: <expectation>
//	 but got: <actual>
//
// # Basic Usage
//
//	func TestGreeting(t *testing.T) {
//		matcha.AssertThat(t, Greet("World"), matcha.StartsWith("Hello"))
//		matcha.AssertThat(t, 5, matcha.AllOf(matcha.GreaterThan(0), matcha.LessThan(10)))
//		matcha.AssertThat(t, []int{2, 4, 6}, matcha.EveryItem(matcha.Not(matcha.EqualTo(0))))
//	}
//
// # Equality and type capabilities
//
// [EqualTo] is constrained to comparable types, so asking for == on a type
// that does not support it is a compile error rather than a runtime surprise.
// For slices, maps and other non-comparable shapes use [DeepEqualTo], which
// compares structurally with go-cmp. The weaker comparison is never chosen
// silently; the call site always names it.
//
// # Interop
//
// [github.com/uberbrodt/matcha-go/matcha/check] bridges matchers into
// gotest.tools comparisons, and
// [github.com/uberbrodt/matcha-go/matcha/x/mockcompat] converts matchers to
// and from the gomock Matcher contract.
package matcha
