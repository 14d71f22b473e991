package strpred

import "strings"

// Equals reports whether two nullable strings are equal. Both
// nil is equal; exactly one nil is not equal.
func Equals(actual, expected *string) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}
	return *actual == *expected
}

// EqualsIgnoreCase reports whether two nullable strings are
// equal under case folding. Null handling matches Equals.
func EqualsIgnoreCase(actual, expected *string) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}
	return strings.EqualFold(*actual, *expected)
}

// EqualsIgnoreWhitespace reports whether two nullable strings
// are equal after removing all whitespace from both sides. Null
// handling matches Equals.
func EqualsIgnoreWhitespace(actual, expected *string) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}
	return stripWhitespace(*actual) == stripWhitespace(*expected)
}

// NotEquals reports whether two nullable strings differ. It
// passes when exactly one side is nil and fails when both are
// nil.
func NotEquals(actual, expected *string) bool {
	if actual == nil && expected == nil {
		return false
	}
	if actual == nil || expected == nil {
		return true
	}
	return *actual != *expected
}

// EqualsAny reports whether the actual value equals at least
// one candidate. Candidates form an ordered sequence in which
// nil entries and duplicates are legal; a nil candidate matches
// a nil actual. A nil candidate sequence never matches.
func EqualsAny(actual *string, candidates []*string) bool {
	if candidates == nil {
		return false
	}
	for _, c := range candidates {
		if Equals(actual, c) {
			return true
		}
	}
	return false
}

// EqualsAnyIgnoreCase is EqualsAny under case folding.
func EqualsAnyIgnoreCase(actual *string, candidates []*string) bool {
	if candidates == nil {
		return false
	}
	for _, c := range candidates {
		if EqualsIgnoreCase(actual, c) {
			return true
		}
	}
	return false
}

// EqualsNone reports whether the actual value equals no
// candidate. A nil candidate is a legal member that excludes a
// nil actual. A nil candidate sequence fails the predicate.
func EqualsNone(actual *string, candidates []*string) bool {
	if candidates == nil {
		return false
	}
	for _, c := range candidates {
		if Equals(actual, c) {
			return false
		}
	}
	return true
}

// EqualsNoneIgnoreCase is EqualsNone under case folding.
func EqualsNoneIgnoreCase(actual *string, candidates []*string) bool {
	if candidates == nil {
		return false
	}
	for _, c := range candidates {
		if EqualsIgnoreCase(actual, c) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the actual value contains at
// least one candidate substring. Containment against null is
// undefined, so a nil actual fails and nil candidates are
// skipped.
func ContainsAny(actual *string, candidates []*string) bool {
	if actual == nil || candidates == nil {
		return false
	}
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if strings.Contains(*actual, *c) {
			return true
		}
	}
	return false
}

// ContainsAnyIgnoreCase is ContainsAny under case folding.
func ContainsAnyIgnoreCase(actual *string, candidates []*string) bool {
	if actual == nil || candidates == nil {
		return false
	}
	lower := strings.ToLower(*actual)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if strings.Contains(lower, strings.ToLower(*c)) {
			return true
		}
	}
	return false
}
