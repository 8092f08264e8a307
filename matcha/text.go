package matcha

import (
	"strings"
	"unicode"

	"github.com/uberbrodt/fungo/fun"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uberbrodt/matcha-go/matcha/format"
)

// The text factories are generic over ~string so named string types flow
// through without conversion at the call site; policies normalize to a plain
// string before comparing.

type containsSubstring[S ~string] struct{}

func (containsSubstring[S]) matches(expected, actual S) bool {
	return strings.Contains(string(actual), string(expected))
}

func (containsSubstring[S]) describe(expected S) string {
	return "contains " + format.Value(string(expected))
}

// ContainsString matches text that contains substr.
func ContainsString[S ~string](substr S) Matcher[S] {
	return matcher[S, S]{p: containsSubstring[S]{}, expected: substr}
}

type startsWith[S ~string] struct{}

func (startsWith[S]) matches(expected, actual S) bool {
	return strings.HasPrefix(string(actual), string(expected))
}

func (startsWith[S]) describe(expected S) string {
	return "starts with " + format.Value(string(expected))
}

// StartsWith matches text beginning with prefix. A prefix longer than the
// actual text simply does not match.
func StartsWith[S ~string](prefix S) Matcher[S] {
	return matcher[S, S]{p: startsWith[S]{}, expected: prefix}
}

type endsWith[S ~string] struct{}

func (endsWith[S]) matches(expected, actual S) bool {
	// HasSuffix is length-safe: a suffix longer than actual is false, not a
	// negative offset.
	return strings.HasSuffix(string(actual), string(expected))
}

func (endsWith[S]) describe(expected S) string {
	return "ends with " + format.Value(string(expected))
}

// EndsWith matches text ending with suffix.
func EndsWith[S ~string](suffix S) Matcher[S] {
	return matcher[S, S]{p: endsWith[S]{}, expected: suffix}
}

// upperFold applies a Unicode upper-case fold. A fresh Caser per call keeps
// the policy free of shared state; cases.Caser is not safe for concurrent use.
func upperFold(s string) string {
	return cases.Upper(language.Und).String(s)
}

type equalIgnoringCase[S ~string] struct{}

func (equalIgnoringCase[S]) matches(expected, actual S) bool {
	return upperFold(string(expected)) == upperFold(string(actual))
}

func (equalIgnoringCase[S]) describe(expected S) string {
	return "Equal to " + format.Value(string(expected)) + " ignoring case"
}

// EqualToIgnoringCase matches text equal to value after an upper-case fold of
// both sides.
func EqualToIgnoringCase[S ~string](value S) Matcher[S] {
	return matcher[S, S]{p: equalIgnoringCase[S]{}, expected: value}
}

func stripSpace(s string) string {
	kept := fun.Filter([]rune(s), func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	return string(kept)
}

type equalIgnoringWhiteSpace[S ~string] struct{}

func (equalIgnoringWhiteSpace[S]) matches(expected, actual S) bool {
	return stripSpace(string(expected)) == stripSpace(string(actual))
}

func (equalIgnoringWhiteSpace[S]) describe(expected S) string {
	return "Equal to " + format.Value(string(expected)) + " ignoring white space"
}

// EqualToIgnoringWhiteSpace matches text equal to value once every
// white-space rune is removed from both sides.
func EqualToIgnoringWhiteSpace[S ~string](value S) Matcher[S] {
	return matcher[S, S]{p: equalIgnoringWhiteSpace[S]{}, expected: value}
}
