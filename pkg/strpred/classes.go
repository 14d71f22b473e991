package strpred

import (
	"strings"
	"unicode"
)

// allRunes reports whether every rune of s satisfies pred. The
// empty string vacuously satisfies any class; callers decide
// whether empty is a member of their class.
func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool { return unicode.IsLetter(r) }

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool { return unicode.IsDigit(r) }

// IsAlpha reports whether the actual value consists only of
// letters. A nil or empty actual is not alphabetic.
func IsAlpha(actual *string) bool {
	if actual == nil || *actual == "" {
		return false
	}
	return allRunes(*actual, isLetter)
}

// IsAlphanumeric reports whether the actual value consists only
// of letters and digits. A nil or empty actual fails.
func IsAlphanumeric(actual *string) bool {
	if actual == nil || *actual == "" {
		return false
	}
	return allRunes(*actual, isLetterOrDigit)
}

// IsAlphaSpace reports whether the actual value consists only
// of letters and spaces. The empty string is a member of this
// class; nil is not.
func IsAlphaSpace(actual *string) bool {
	if actual == nil {
		return false
	}
	return allRunes(*actual, func(r rune) bool {
		return isLetter(r) || r == ' '
	})
}

// IsAlphanumericSpace reports whether the actual value consists
// only of letters, digits, and spaces. The empty string is a
// member; nil is not.
func IsAlphanumericSpace(actual *string) bool {
	if actual == nil {
		return false
	}
	return allRunes(*actual, func(r rune) bool {
		return isLetterOrDigit(r) || r == ' '
	})
}

// IsNumeric reports whether the actual value consists only of
// digits. A nil or empty actual fails.
func IsNumeric(actual *string) bool {
	if actual == nil || *actual == "" {
		return false
	}
	return allRunes(*actual, isDigit)
}

// IsNumericSpace reports whether the actual value consists only
// of digits and spaces. The empty string is a member; nil is
// not.
func IsNumericSpace(actual *string) bool {
	if actual == nil {
		return false
	}
	return allRunes(*actual, func(r rune) bool {
		return isDigit(r) || r == ' '
	})
}

// IsASCIIPrintable reports whether the actual value consists
// only of printable ASCII characters (0x20-0x7E). The empty
// string is a member; nil is not.
func IsASCIIPrintable(actual *string) bool {
	if actual == nil {
		return false
	}
	return allRunes(*actual, func(r rune) bool {
		return r >= 0x20 && r < 0x7F
	})
}

// IsEmpty reports whether the actual value is nil or the empty
// string. Null counts as empty.
func IsEmpty(actual *string) bool {
	return actual == nil || *actual == ""
}

// IsBlank reports whether the actual value is nil, empty, or
// whitespace only. Null counts as blank.
func IsBlank(actual *string) bool {
	return actual == nil || strings.TrimSpace(*actual) == ""
}

// IsNotEmpty reports whether the actual value is a real,
// non-empty string. Nil fails.
func IsNotEmpty(actual *string) bool {
	return actual != nil && *actual != ""
}

// IsNotBlank reports whether the actual value is a real string
// containing at least one non-whitespace character. Nil fails.
func IsNotBlank(actual *string) bool {
	return actual != nil && strings.TrimSpace(*actual) != ""
}

// IsNotAlpha reports whether the actual value is a real string
// that is not purely alphabetic. Null is not a member of the
// negative space, so a nil actual fails.
func IsNotAlpha(actual *string) bool {
	if actual == nil {
		return false
	}
	return !IsAlpha(actual)
}

// IsNotAlphanumeric reports whether the actual value is a real
// string that is not purely alphanumeric. A nil actual fails.
func IsNotAlphanumeric(actual *string) bool {
	if actual == nil {
		return false
	}
	return !IsAlphanumeric(actual)
}

// IsNotNumeric reports whether the actual value is a real
// string that is not purely numeric. A nil actual fails.
func IsNotNumeric(actual *string) bool {
	if actual == nil {
		return false
	}
	return !IsNumeric(actual)
}

// IsNotASCIIPrintable reports whether the actual value is a
// real string containing at least one non-printable or
// non-ASCII character. A nil actual fails.
func IsNotASCIIPrintable(actual *string) bool {
	if actual == nil {
		return false
	}
	return !IsASCIIPrintable(actual)
}

// IsEmptyOrAlpha reports whether the actual value is absent,
// empty, or purely alphabetic.
func IsEmptyOrAlpha(actual *string) bool {
	return IsEmpty(actual) || IsAlpha(actual)
}

// IsEmptyOrAlphanumeric reports whether the actual value is
// absent, empty, or purely alphanumeric.
func IsEmptyOrAlphanumeric(actual *string) bool {
	return IsEmpty(actual) || IsAlphanumeric(actual)
}

// IsEmptyOrNumeric reports whether the actual value is absent,
// empty, or purely numeric.
func IsEmptyOrNumeric(actual *string) bool {
	return IsEmpty(actual) || IsNumeric(actual)
}

// IsBlankOrAlpha reports whether the actual value is absent,
// blank, or purely alphabetic.
func IsBlankOrAlpha(actual *string) bool {
	return IsBlank(actual) || IsAlpha(actual)
}

// IsBlankOrAlphanumeric reports whether the actual value is
// absent, blank, or purely alphanumeric.
func IsBlankOrAlphanumeric(actual *string) bool {
	return IsBlank(actual) || IsAlphanumeric(actual)
}

// IsBlankOrNumeric reports whether the actual value is absent,
// blank, or purely numeric.
func IsBlankOrNumeric(actual *string) bool {
	return IsBlank(actual) || IsNumeric(actual)
}
