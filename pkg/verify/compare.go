package verify

import (
	"fmt"

	"digital.vasic.verify/pkg/strpred"
)

// Ordering and length verify methods.

// Compare verifies that ordering the current value against
// expected lands in the same sign class as ordinal: negative,
// zero, or positive. Null sorts before any real string and two
// absent values compare as zero.
func (v *Verifier) Compare(
	t TestingT, expected *string, ordinal int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	want := strpred.Signum(ordinal)
	return v.check(t, "compare", func(a *string) bool {
		return strpred.Signum(strpred.Compare(a, expected)) == want
	}, fmt.Sprintf(
		"sign %+d against %s", want, renderValue(expected),
	), msgAndArgs)
}

// CompareIgnoreCase is Compare under case folding.
func (v *Verifier) CompareIgnoreCase(
	t TestingT, expected *string, ordinal int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	want := strpred.Signum(ordinal)
	return v.check(t, "compare ignore case", func(a *string) bool {
		return strpred.Signum(
			strpred.CompareIgnoreCase(a, expected),
		) == want
	}, fmt.Sprintf(
		"sign %+d against %s", want, renderValue(expected),
	), msgAndArgs)
}

// LengthEquals verifies that the current value has exactly n
// characters. An absent value has no length and always fails.
func (v *Verifier) LengthEquals(
	t TestingT, n int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "length equals", func(a *string) bool {
		return strpred.LengthEquals(a, n)
	}, fmt.Sprintf("length %d", n), msgAndArgs)
}

// LengthNotEquals verifies that the current value does not have
// exactly n characters. An absent value passes vacuously for
// every n.
func (v *Verifier) LengthNotEquals(
	t TestingT, n int, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "length not equals", func(a *string) bool {
		return strpred.LengthNotEquals(a, n)
	}, fmt.Sprintf("any length but %d", n), msgAndArgs)
}
