package verify

import "digital.vasic.verify/pkg/strpred"

// Anchoring and containment verify methods. Anchoring requires
// real strings on both sides; only the explicit "-None"
// variants tolerate nil candidates.

// StartsWith verifies that the current value starts with the
// given prefix.
func (v *Verifier) StartsWith(
	t TestingT, prefix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "starts with", func(a *string) bool {
		return strpred.StartsWith(a, prefix)
	}, "prefix "+renderValue(prefix), msgAndArgs)
}

// StartsWithIgnoreCase is StartsWith under case folding.
func (v *Verifier) StartsWithIgnoreCase(
	t TestingT, prefix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "starts with ignore case",
		func(a *string) bool {
			return strpred.StartsWithIgnoreCase(a, prefix)
		}, "prefix "+renderValue(prefix), msgAndArgs)
}

// StartsWithAny verifies that the current value starts with at
// least one candidate prefix.
func (v *Verifier) StartsWithAny(
	t TestingT, prefixes []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "starts with any", func(a *string) bool {
		return strpred.StartsWithAny(a, prefixes)
	}, "any prefix of "+renderCandidates(prefixes), msgAndArgs)
}

// StartsWithNone verifies that the current value starts with
// none of the candidate prefixes.
func (v *Verifier) StartsWithNone(
	t TestingT, prefixes []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "starts with none", func(a *string) bool {
		return strpred.StartsWithNone(a, prefixes)
	}, "no prefix of "+renderCandidates(prefixes), msgAndArgs)
}

// NotStartsWith verifies that the current value does not start
// with the given prefix.
func (v *Verifier) NotStartsWith(
	t TestingT, prefix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not starts with", func(a *string) bool {
		return strpred.NotStartsWith(a, prefix)
	}, "no prefix "+renderValue(prefix), msgAndArgs)
}

// EndsWith verifies that the current value ends with the given
// suffix.
func (v *Verifier) EndsWith(
	t TestingT, suffix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "ends with", func(a *string) bool {
		return strpred.EndsWith(a, suffix)
	}, "suffix "+renderValue(suffix), msgAndArgs)
}

// EndsWithIgnoreCase is EndsWith under case folding.
func (v *Verifier) EndsWithIgnoreCase(
	t TestingT, suffix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "ends with ignore case",
		func(a *string) bool {
			return strpred.EndsWithIgnoreCase(a, suffix)
		}, "suffix "+renderValue(suffix), msgAndArgs)
}

// EndsWithAny verifies that the current value ends with at
// least one candidate suffix.
func (v *Verifier) EndsWithAny(
	t TestingT, suffixes []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "ends with any", func(a *string) bool {
		return strpred.EndsWithAny(a, suffixes)
	}, "any suffix of "+renderCandidates(suffixes), msgAndArgs)
}

// EndsWithNone verifies that the current value ends with none
// of the candidate suffixes.
func (v *Verifier) EndsWithNone(
	t TestingT, suffixes []*string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "ends with none", func(a *string) bool {
		return strpred.EndsWithNone(a, suffixes)
	}, "no suffix of "+renderCandidates(suffixes), msgAndArgs)
}

// NotEndsWith verifies that the current value does not end with
// the given suffix.
func (v *Verifier) NotEndsWith(
	t TestingT, suffix *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not ends with", func(a *string) bool {
		return strpred.NotEndsWith(a, suffix)
	}, "no suffix "+renderValue(suffix), msgAndArgs)
}

// Contains verifies that the current value contains the given
// substring.
func (v *Verifier) Contains(
	t TestingT, substr *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "contains", func(a *string) bool {
		return strpred.Contains(a, substr)
	}, "substring "+renderValue(substr), msgAndArgs)
}

// ContainsIgnoreCase is Contains under case folding.
func (v *Verifier) ContainsIgnoreCase(
	t TestingT, substr *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "contains ignore case",
		func(a *string) bool {
			return strpred.ContainsIgnoreCase(a, substr)
		}, "substring "+renderValue(substr), msgAndArgs)
}

// NotContains verifies that the current value does not contain
// the given substring.
func (v *Verifier) NotContains(
	t TestingT, substr *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not contains", func(a *string) bool {
		return strpred.NotContains(a, substr)
	}, "no substring "+renderValue(substr), msgAndArgs)
}

// NotContainsIgnoreCase is NotContains under case folding.
func (v *Verifier) NotContainsIgnoreCase(
	t TestingT, substr *string, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.check(t, "not contains ignore case",
		func(a *string) bool {
			return strpred.NotContainsIgnoreCase(a, substr)
		}, "no substring "+renderValue(substr), msgAndArgs)
}
