package verify

import (
	"fmt"

	"digital.vasic.verify/pkg/strpred"
)

// Positional-extraction verify methods: apply a substring
// transform to the current value and compare the result to an
// expected value. An absent actual fails every variant, even
// against an absent expected; out-of-range indices clamp.

// transformCheck wraps a transform-then-compare predicate with
// the shared null rule: the transform is undefined on an absent
// actual.
func (v *Verifier) transformCheck(
	t TestingT,
	op string,
	transform func(*string) *string,
	expected *string,
	msgAndArgs []any,
) *Verifier {
	t.Helper()
	return v.check(t, op, func(a *string) bool {
		if a == nil {
			return false
		}
		return strpred.Equals(transform(a), expected)
	}, renderValue(expected), msgAndArgs)
}

// LeftEquals verifies that the leftmost n characters of the
// current value equal expected.
func (v *Verifier) LeftEquals(
	t TestingT, n int, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("left(%d) equals", n),
		func(a *string) *string { return strpred.Left(a, n) },
		expected, msgAndArgs)
}

// RightEquals verifies that the rightmost n characters of the
// current value equal expected.
func (v *Verifier) RightEquals(
	t TestingT, n int, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("right(%d) equals", n),
		func(a *string) *string { return strpred.Right(a, n) },
		expected, msgAndArgs)
}

// MidEquals verifies that the n characters starting at pos in
// the current value equal expected.
func (v *Verifier) MidEquals(
	t TestingT, pos, n int, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("mid(%d,%d) equals", pos, n),
		func(a *string) *string {
			return strpred.Mid(a, pos, n)
		}, expected, msgAndArgs)
}

// SubstringBeforeEquals verifies that the portion of the
// current value before the first occurrence of sep equals
// expected.
func (v *Verifier) SubstringBeforeEquals(
	t TestingT, sep, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "substring before equals",
		func(a *string) *string {
			return strpred.SubstringBefore(a, sep)
		}, expected, msgAndArgs)
}

// SubstringAfterEquals verifies that the portion of the current
// value after the first occurrence of sep equals expected.
func (v *Verifier) SubstringAfterEquals(
	t TestingT, sep, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "substring after equals",
		func(a *string) *string {
			return strpred.SubstringAfter(a, sep)
		}, expected, msgAndArgs)
}

// SubstringBetweenEquals verifies that the portion of the
// current value between open and close equals expected.
func (v *Verifier) SubstringBetweenEquals(
	t TestingT, open, close, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "substring between equals",
		func(a *string) *string {
			return strpred.SubstringBetween(a, open, close)
		}, expected, msgAndArgs)
}
