/*
* This package bridges matchers into [gotest.tools/v3/assert].
*
* # Why is this needed?
*
* [matcha.AssertThat] reports through its own output strategy. Test suites
* already built on gotest.tools usually want matchers to participate in
* assert.Check/assert.Assert instead, so failures share one reporting path.
 */
package check

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/uberbrodt/matcha-go/matcha"
)

// That adapts a matcher into a [cmp.Comparison] for use with [assert.Check]
// and [assert.Assert].
func That[A any](actual A, m matcha.Matcher[A]) cmp.Comparison {
	return func() cmp.Result {
		if err := matcha.VerifyThat(actual, m); err != nil {
			return cmp.ResultFailure(err.Error())
		}
		return cmp.ResultSuccess
	}
}

// Matches runs the matcher as a non-fatal check against t.
func Matches[A any](t *testing.T, actual A, m matcha.Matcher[A], msgAndArgs ...any) bool {
	t.Helper()
	return assert.Check(t, That(actual, m), msgAndArgs...)
}

// Chain returns false if any item in [checks] fails.
func Chain(t *testing.T, checks ...bool) bool {
	t.Helper()
	for idx, check := range checks {
		if !check {
			t.Logf("[check.Chain] check #%d failed\n", idx)
			return check
		}
	}
	return true
}
