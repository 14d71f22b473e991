package strpred

import "strings"

// Compare orders two nullable strings. Null sorts before any
// real string: both nil yields 0, a nil actual against a real
// expected yields a negative result, and the mirror case yields
// a positive one. Real strings compare lexicographically.
func Compare(actual, expected *string) int {
	if actual == nil && expected == nil {
		return 0
	}
	if actual == nil {
		return -1
	}
	if expected == nil {
		return 1
	}
	return strings.Compare(*actual, *expected)
}

// CompareIgnoreCase orders two nullable strings under case
// folding, with the same null convention as Compare.
func CompareIgnoreCase(actual, expected *string) int {
	if actual == nil && expected == nil {
		return 0
	}
	if actual == nil {
		return -1
	}
	if expected == nil {
		return 1
	}
	return strings.Compare(
		strings.ToLower(*actual),
		strings.ToLower(*expected),
	)
}

// Signum collapses a comparison result to its sign class:
// -1, 0, or 1.
func Signum(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// LengthEquals reports whether the actual value has exactly n
// characters. A nil actual has no length and always fails.
func LengthEquals(actual *string, n int) bool {
	if actual == nil {
		return false
	}
	return len([]rune(*actual)) == n
}

// LengthNotEquals reports whether the actual value does not
// have exactly n characters. A nil actual has no defined
// length, so "not equal to n" holds vacuously for every n.
func LengthNotEquals(actual *string, n int) bool {
	if actual == nil {
		return true
	}
	return len([]rune(*actual)) != n
}
