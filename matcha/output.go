package matcha

import (
	"fmt"
	"io"
)

// A TestReporter is the narrow slice of the host test framework the output
// strategies talk to. It is satisfied by the standard library's *testing.T.
type TestReporter interface {
	// logs an error and fails the test
	Errorf(format string, args ...any)
	// logs that will show up only if a test fails
	Logf(format string, args ...any)
}

// TestHelper is a TestReporter that has the Helper method. It is satisfied
// by the standard library's *testing.T.
type TestHelper interface {
	TestReporter
	Helper()
}

// Output turns the rendered expectation, the rendered actual value and the
// match outcome into a terminal result. Strategies are func values so each
// keeps its own result type; one is bound per entry point, never per matcher.
type Output[R any] func(expected, actual string, ok bool) R

// failureMessage is the one diagnostic format every strategy shares.
func failureMessage(expected, actual string) string {
	return "Expected: " + expected + "\n but got: " + actual
}

// StandardOutput writes the diagnostic to w on failure and returns the
// outcome either way.
func StandardOutput(w io.Writer) Output[bool] {
	return func(expected, actual string, ok bool) bool {
		if !ok {
			fmt.Fprintln(w, failureMessage(expected, actual))
		}
		return ok
	}
}

// MismatchError carries the full diagnostic of a failed match.
type MismatchError struct {
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return failureMessage(e.Expected, e.Actual)
}

// ErrorOutput returns nil on success and a [*MismatchError] on failure.
func ErrorOutput() Output[error] {
	return func(expected, actual string, ok bool) error {
		if ok {
			return nil
		}
		return &MismatchError{Expected: expected, Actual: actual}
	}
}

// TestOutput reports failures through the host test framework and returns
// the outcome.
func TestOutput(t TestReporter) Output[bool] {
	return func(expected, actual string, ok bool) bool {
		if !ok {
			if h, isHelper := t.(TestHelper); isHelper {
				h.Helper()
			}
			t.Errorf("%s", failureMessage(expected, actual))
		}
		return ok
	}
}
