package verify

import (
	"fmt"

	"digital.vasic.verify/pkg/strpred"
)

// Transform-then-compare verify methods. An absent actual fails
// every variant; an absent needle, pad, or strip argument
// degrades the transform to a no-op (or its documented default)
// instead of failing.

// RemoveStartEquals verifies the value with one leading
// occurrence of remove stripped.
func (v *Verifier) RemoveStartEquals(
	t TestingT, remove, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "remove start equals",
		func(a *string) *string {
			return strpred.RemoveStart(a, remove)
		}, expected, msgAndArgs)
}

// RemoveStartIgnoreCaseEquals is RemoveStartEquals under case
// folding.
func (v *Verifier) RemoveStartIgnoreCaseEquals(
	t TestingT, remove, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "remove start ignore case equals",
		func(a *string) *string {
			return strpred.RemoveStartIgnoreCase(a, remove)
		}, expected, msgAndArgs)
}

// RemoveEndEquals verifies the value with one trailing
// occurrence of remove stripped.
func (v *Verifier) RemoveEndEquals(
	t TestingT, remove, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "remove end equals",
		func(a *string) *string {
			return strpred.RemoveEnd(a, remove)
		}, expected, msgAndArgs)
}

// RemoveEndIgnoreCaseEquals is RemoveEndEquals under case
// folding.
func (v *Verifier) RemoveEndIgnoreCaseEquals(
	t TestingT, remove, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "remove end ignore case equals",
		func(a *string) *string {
			return strpred.RemoveEndIgnoreCase(a, remove)
		}, expected, msgAndArgs)
}

// RemoveEquals verifies the value with every occurrence of
// remove stripped.
func (v *Verifier) RemoveEquals(
	t TestingT, remove, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "remove equals",
		func(a *string) *string {
			return strpred.Remove(a, remove)
		}, expected, msgAndArgs)
}

// ReplaceEquals verifies the value with every occurrence of old
// replaced by new.
func (v *Verifier) ReplaceEquals(
	t TestingT, old, new, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "replace equals",
		func(a *string) *string {
			return strpred.Replace(a, old, new)
		}, expected, msgAndArgs)
}

// ReplaceOnceEquals verifies the value with only the first
// occurrence of old replaced by new.
func (v *Verifier) ReplaceOnceEquals(
	t TestingT, old, new, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "replace once equals",
		func(a *string) *string {
			return strpred.ReplaceOnce(a, old, new)
		}, expected, msgAndArgs)
}

// ReplaceIgnoreCaseEquals verifies the value with every
// case-insensitive occurrence of old replaced by new.
func (v *Verifier) ReplaceIgnoreCaseEquals(
	t TestingT, old, new, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "replace ignore case equals",
		func(a *string) *string {
			return strpred.ReplaceIgnoreCase(a, old, new)
		}, expected, msgAndArgs)
}

// ReverseEquals verifies the value with its characters in
// reverse order, whitespace preserved.
func (v *Verifier) ReverseEquals(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "reverse equals",
		strpred.Reverse, expected, msgAndArgs)
}

// TrimmedEquals verifies the value with leading and trailing
// whitespace removed.
func (v *Verifier) TrimmedEquals(
	t TestingT, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "trimmed equals",
		strpred.Trim, expected, msgAndArgs)
}

// TruncatedEquals verifies the value truncated to at most
// maxWidth characters.
func (v *Verifier) TruncatedEquals(
	t TestingT, maxWidth int, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("truncated(%d) equals", maxWidth),
		func(a *string) *string {
			return strpred.Truncate(a, maxWidth)
		}, expected, msgAndArgs)
}

// StrippedEquals verifies the value with leading and trailing
// characters drawn from chars removed. An absent chars strips
// whitespace.
func (v *Verifier) StrippedEquals(
	t TestingT, chars, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "stripped equals",
		func(a *string) *string {
			return strpred.Strip(a, chars)
		}, expected, msgAndArgs)
}

// StrippedStartEquals verifies the value with leading
// characters drawn from chars removed.
func (v *Verifier) StrippedStartEquals(
	t TestingT, chars, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "stripped start equals",
		func(a *string) *string {
			return strpred.StripStart(a, chars)
		}, expected, msgAndArgs)
}

// StrippedEndEquals verifies the value with trailing characters
// drawn from chars removed.
func (v *Verifier) StrippedEndEquals(
	t TestingT, chars, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t, "stripped end equals",
		func(a *string) *string {
			return strpred.StripEnd(a, chars)
		}, expected, msgAndArgs)
}

// CenterPadEquals verifies the value centered to size
// characters with pad.
func (v *Verifier) CenterPadEquals(
	t TestingT, size int, pad, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("center pad(%d) equals", size),
		func(a *string) *string {
			return strpred.Center(a, size, pad)
		}, expected, msgAndArgs)
}

// LeftPadEquals verifies the value left-padded to size
// characters with pad.
func (v *Verifier) LeftPadEquals(
	t TestingT, size int, pad, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("left pad(%d) equals", size),
		func(a *string) *string {
			return strpred.LeftPad(a, size, pad)
		}, expected, msgAndArgs)
}

// RightPadEquals verifies the value right-padded to size
// characters with pad.
func (v *Verifier) RightPadEquals(
	t TestingT, size int, pad, expected *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.transformCheck(t,
		fmt.Sprintf("right pad(%d) equals", size),
		func(a *string) *string {
			return strpred.RightPad(a, size, pad)
		}, expected, msgAndArgs)
}
