package verify

import "digital.vasic.verify/pkg/strpred"

// Character-class verify methods. IsBlank and IsEmpty treat an
// absent value as blank/empty; every other class check,
// positive or negative, fails on an absent value.

// classCheck wraps a unary character-class predicate.
func (v *Verifier) classCheck(
	t TestingT,
	op string,
	pred func(*string) bool,
	expected string,
	msgAndArgs []any,
) *Verifier {
	t.Helper()
	return v.check(t, op, pred, expected, msgAndArgs)
}

// IsAlpha verifies that the current value consists only of
// letters.
func (v *Verifier) IsAlpha(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is alpha", strpred.IsAlpha,
		"letters only", msgAndArgs)
}

// IsAlphanumeric verifies that the current value consists only
// of letters and digits.
func (v *Verifier) IsAlphanumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is alphanumeric",
		strpred.IsAlphanumeric,
		"letters and digits only", msgAndArgs)
}

// IsAlphaSpace verifies that the current value consists only of
// letters and spaces.
func (v *Verifier) IsAlphaSpace(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is alpha space",
		strpred.IsAlphaSpace,
		"letters and spaces only", msgAndArgs)
}

// IsAlphanumericSpace verifies that the current value consists
// only of letters, digits, and spaces.
func (v *Verifier) IsAlphanumericSpace(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is alphanumeric space",
		strpred.IsAlphanumericSpace,
		"letters, digits, and spaces only", msgAndArgs)
}

// IsNumeric verifies that the current value consists only of
// digits.
func (v *Verifier) IsNumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is numeric", strpred.IsNumeric,
		"digits only", msgAndArgs)
}

// IsNumericSpace verifies that the current value consists only
// of digits and spaces.
func (v *Verifier) IsNumericSpace(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is numeric space",
		strpred.IsNumericSpace,
		"digits and spaces only", msgAndArgs)
}

// IsASCIIPrintable verifies that the current value consists
// only of printable ASCII characters.
func (v *Verifier) IsASCIIPrintable(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is ascii printable",
		strpred.IsASCIIPrintable,
		"printable ascii only", msgAndArgs)
}

// IsEmpty verifies that the current value is absent or the
// empty string.
func (v *Verifier) IsEmpty(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is empty", strpred.IsEmpty,
		"empty or absent", msgAndArgs)
}

// IsBlank verifies that the current value is absent, empty, or
// whitespace only.
func (v *Verifier) IsBlank(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is blank", strpred.IsBlank,
		"blank or absent", msgAndArgs)
}

// IsNotEmpty verifies that the current value is a real,
// non-empty string.
func (v *Verifier) IsNotEmpty(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not empty", strpred.IsNotEmpty,
		"a non-empty string", msgAndArgs)
}

// IsNotBlank verifies that the current value is a real string
// with at least one non-whitespace character.
func (v *Verifier) IsNotBlank(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not blank", strpred.IsNotBlank,
		"a non-blank string", msgAndArgs)
}

// IsNotAlpha verifies that the current value is a real string
// that is not purely alphabetic.
func (v *Verifier) IsNotAlpha(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not alpha", strpred.IsNotAlpha,
		"not letters only", msgAndArgs)
}

// IsNotAlphanumeric verifies that the current value is a real
// string that is not purely alphanumeric.
func (v *Verifier) IsNotAlphanumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not alphanumeric",
		strpred.IsNotAlphanumeric,
		"not letters and digits only", msgAndArgs)
}

// IsNotNumeric verifies that the current value is a real string
// that is not purely numeric.
func (v *Verifier) IsNotNumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not numeric",
		strpred.IsNotNumeric,
		"not digits only", msgAndArgs)
}

// IsNotASCIIPrintable verifies that the current value is a real
// string containing at least one non-printable or non-ASCII
// character.
func (v *Verifier) IsNotASCIIPrintable(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is not ascii printable",
		strpred.IsNotASCIIPrintable,
		"not printable ascii only", msgAndArgs)
}

// IsEmptyOrAlpha verifies that the current value is absent,
// empty, or purely alphabetic.
func (v *Verifier) IsEmptyOrAlpha(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is empty or alpha",
		strpred.IsEmptyOrAlpha,
		"empty or letters only", msgAndArgs)
}

// IsEmptyOrAlphanumeric verifies that the current value is
// absent, empty, or purely alphanumeric.
func (v *Verifier) IsEmptyOrAlphanumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is empty or alphanumeric",
		strpred.IsEmptyOrAlphanumeric,
		"empty or letters and digits only", msgAndArgs)
}

// IsEmptyOrNumeric verifies that the current value is absent,
// empty, or purely numeric.
func (v *Verifier) IsEmptyOrNumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is empty or numeric",
		strpred.IsEmptyOrNumeric,
		"empty or digits only", msgAndArgs)
}

// IsBlankOrAlpha verifies that the current value is absent,
// blank, or purely alphabetic.
func (v *Verifier) IsBlankOrAlpha(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is blank or alpha",
		strpred.IsBlankOrAlpha,
		"blank or letters only", msgAndArgs)
}

// IsBlankOrAlphanumeric verifies that the current value is
// absent, blank, or purely alphanumeric.
func (v *Verifier) IsBlankOrAlphanumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is blank or alphanumeric",
		strpred.IsBlankOrAlphanumeric,
		"blank or letters and digits only", msgAndArgs)
}

// IsBlankOrNumeric verifies that the current value is absent,
// blank, or purely numeric.
func (v *Verifier) IsBlankOrNumeric(
	t TestingT, msgAndArgs ...any,
) *Verifier {
	t.Helper()
	return v.classCheck(t, "is blank or numeric",
		strpred.IsBlankOrNumeric,
		"blank or digits only", msgAndArgs)
}
