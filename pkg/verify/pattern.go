package verify

import (
	"fmt"
	"regexp"

	"digital.vasic.verify/pkg/strpred"
)

// Pattern-matching and match-count verify methods. Both match
// directions require a real string: an absent actual fails
// Matches and NotMatches alike.

// Matches verifies that the current value matches the given
// regular expression pattern.
func (v *Verifier) Matches(
	t TestingT, pattern *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "matches", func(a *string) bool {
		return strpred.Matches(a, pattern)
	}, "match of "+renderValue(pattern), msgAndArgs)
}

// MatchesRegexp verifies the current value against a
// precompiled pattern.
func (v *Verifier) MatchesRegexp(
	t TestingT, re *regexp.Regexp, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	expected := nullRendering
	if re != nil {
		expected = "match of " + re.String()
	}
	return v.check(t, "matches", func(a *string) bool {
		return strpred.MatchesRegexp(a, re)
	}, expected, msgAndArgs)
}

// NotMatches verifies that the current value does not match the
// given pattern. An absent value is never a valid non-match.
func (v *Verifier) NotMatches(
	t TestingT, pattern *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not matches", func(a *string) bool {
		return strpred.NotMatches(a, pattern)
	}, "no match of "+renderValue(pattern), msgAndArgs)
}

// NotMatchesRegexp verifies the current value does not match a
// precompiled pattern.
func (v *Verifier) NotMatchesRegexp(
	t TestingT, re *regexp.Regexp, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	expected := nullRendering
	if re != nil {
		expected = "no match of " + re.String()
	}
	return v.check(t, "not matches", func(a *string) bool {
		return strpred.NotMatchesRegexp(a, re)
	}, expected, msgAndArgs)
}

// NumberOfMatchesEquals verifies that the pattern occurs
// exactly n times in the current value. An absent actual fails;
// an absent pattern counts as zero occurrences by convention.
func (v *Verifier) NumberOfMatchesEquals(
	t TestingT, pattern *string, n int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "number of matches equals",
		func(a *string) bool {
			if a == nil {
				return false
			}
			return strpred.NumberOfMatches(a, pattern) == n
		}, fmt.Sprintf(
			"%d matches of %s", n, renderValue(pattern),
		), msgAndArgs)
}

// NumberOfMatchesNotEquals verifies that the pattern does not
// occur exactly n times in the current value. An absent actual
// fails.
func (v *Verifier) NumberOfMatchesNotEquals(
	t TestingT, pattern *string, n int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "number of matches not equals",
		func(a *string) bool {
			if a == nil {
				return false
			}
			return strpred.NumberOfMatches(a, pattern) != n
		}, fmt.Sprintf(
			"any count but %d matches of %s",
			n, renderValue(pattern),
		), msgAndArgs)
}
