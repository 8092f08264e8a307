package matcha

import "regexp"

type patternArg struct {
	src string
	re  *regexp.Regexp
}

type matchesPattern[S ~string] struct{}

func (matchesPattern[S]) matches(expected patternArg, actual S) bool {
	return expected.re.MatchString(string(actual))
}

func (matchesPattern[S]) describe(expected patternArg) string {
	return "a string matching the pattern " + expected.src
}

// MatchesPattern matches text that the regular expression matches in full,
// not merely as a substring. The pattern compiles when the matcher is built;
// an invalid pattern panics there, like [regexp.MustCompile], rather than
// turning into a silent non-match.
func MatchesPattern[S ~string](pattern S) Matcher[S] {
	re := regexp.MustCompile(`\A(?:` + string(pattern) + `)\z`)
	return matcher[patternArg, S]{
		p:        matchesPattern[S]{},
		expected: patternArg{src: string(pattern), re: re},
	}
}
