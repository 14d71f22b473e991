package verify

import "digital.vasic.verify/pkg/strpred"

// Equality and set-membership verify methods. Candidate
// sequences are ordered and may contain nil entries and
// duplicates.

// Equals verifies that the current value equals expected. Both
// absent is equal; exactly one absent is not.
func (v *Verifier) Equals(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals", func(a *string) bool {
		return strpred.Equals(a, expected)
	}, renderValue(expected), msgAndArgs)
}

// EqualsIgnoreCase verifies case-folded equality.
func (v *Verifier) EqualsIgnoreCase(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals ignore case", func(a *string) bool {
		return strpred.EqualsIgnoreCase(a, expected)
	}, renderValue(expected), msgAndArgs)
}

// EqualsIgnoreWhitespace verifies equality after removing all
// whitespace from both sides.
func (v *Verifier) EqualsIgnoreWhitespace(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals ignore whitespace",
		func(a *string) bool {
			return strpred.EqualsIgnoreWhitespace(a, expected)
		}, renderValue(expected), msgAndArgs)
}

// NotEquals verifies that the current value differs from
// expected. It passes when exactly one side is absent.
func (v *Verifier) NotEquals(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not equals", func(a *string) bool {
		return strpred.NotEquals(a, expected)
	}, "anything but "+renderValue(expected), msgAndArgs)
}

// EqualsAny verifies that the current value equals at least one
// candidate.
func (v *Verifier) EqualsAny(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals any", func(a *string) bool {
		return strpred.EqualsAny(a, candidates)
	}, "any of "+renderCandidates(candidates), msgAndArgs)
}

// EqualsAnyIgnoreCase is EqualsAny under case folding.
func (v *Verifier) EqualsAnyIgnoreCase(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals any ignore case",
		func(a *string) bool {
			return strpred.EqualsAnyIgnoreCase(a, candidates)
		}, "any of "+renderCandidates(candidates), msgAndArgs)
}

// EqualsNone verifies that the current value equals no
// candidate.
func (v *Verifier) EqualsNone(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals none", func(a *string) bool {
		return strpred.EqualsNone(a, candidates)
	}, "none of "+renderCandidates(candidates), msgAndArgs)
}

// EqualsNoneIgnoreCase is EqualsNone under case folding.
func (v *Verifier) EqualsNoneIgnoreCase(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "equals none ignore case",
		func(a *string) bool {
			return strpred.EqualsNoneIgnoreCase(a, candidates)
		}, "none of "+renderCandidates(candidates), msgAndArgs)
}

// ContainsAny verifies that the current value contains at least
// one candidate substring.
func (v *Verifier) ContainsAny(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "contains any", func(a *string) bool {
		return strpred.ContainsAny(a, candidates)
	}, "any of "+renderCandidates(candidates), msgAndArgs)
}

// ContainsAnyIgnoreCase is ContainsAny under case folding.
func (v *Verifier) ContainsAnyIgnoreCase(
	t TestingT, candidates []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "contains any ignore case",
		func(a *string) bool {
			return strpred.ContainsAnyIgnoreCase(a, candidates)
		}, "any of "+renderCandidates(candidates), msgAndArgs)
}
