package matcha

import (
	"os"

	"github.com/uberbrodt/matcha-go/matcha/format"
)

// AssertResult is the assertion entry point behind the convenience functions.
// It always evaluates the matcher, always renders both operands, and always
// hands the triple to the output strategy, on success and failure alike.
func AssertResult[A, R any](out Output[R], actual A, m Matcher[A]) R {
	expected := m.String()
	got := format.Value(actual)
	ok := m.Matches(actual)
	DebugPrintf("assertResult: ok=%t expected=%s actual=%s", ok, expected, got)
	return out(expected, got, ok)
}

// AssertThat checks actual against m, reporting a failure to t. It returns
// the outcome so callers can gate follow-up checks.
func AssertThat[A any](t TestReporter, actual A, m Matcher[A]) bool {
	if h, ok := t.(TestHelper); ok {
		h.Helper()
	}
	return AssertResult(TestOutput(t), actual, m)
}

// CheckThat prints the diagnostic to stdout on failure and returns the
// outcome.
func CheckThat[A any](actual A, m Matcher[A]) bool {
	return AssertResult(StandardOutput(os.Stdout), actual, m)
}

// VerifyThat returns nil when actual matches m and a [*MismatchError]
// carrying the diagnostic otherwise.
func VerifyThat[A any](actual A, m Matcher[A]) error {
	return AssertResult(ErrorOutput(), actual, m)
}
