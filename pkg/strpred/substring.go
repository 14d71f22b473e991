package strpred

import "strings"

// Positional extraction transforms. All of them are nil-in,
// nil-out: an absent input stays absent, and out-of-range
// indices clamp instead of failing.

// Left returns the leftmost n characters of the actual value.
// A negative n yields the empty string; an n past the end
// yields the whole string.
func Left(actual *string, n int) *string {
	if actual == nil {
		return nil
	}
	runes := []rune(*actual)
	if n < 0 {
		return Ptr("")
	}
	if n >= len(runes) {
		return actual
	}
	return Ptr(string(runes[:n]))
}

// Right returns the rightmost n characters of the actual value,
// with the same clamping as Left.
func Right(actual *string, n int) *string {
	if actual == nil {
		return nil
	}
	runes := []rune(*actual)
	if n < 0 {
		return Ptr("")
	}
	if n >= len(runes) {
		return actual
	}
	return Ptr(string(runes[len(runes)-n:]))
}

// Mid returns n characters starting at pos. A negative pos
// clamps to the start; a pos past the end or a negative n
// yields the empty string.
func Mid(actual *string, pos, n int) *string {
	if actual == nil {
		return nil
	}
	runes := []rune(*actual)
	if n < 0 || pos > len(runes) {
		return Ptr("")
	}
	if pos < 0 {
		pos = 0
	}
	end := pos + n
	if end > len(runes) {
		end = len(runes)
	}
	return Ptr(string(runes[pos:end]))
}

// SubstringBefore returns the portion of the actual value
// before the first occurrence of sep. A nil sep leaves the
// value untouched; an empty sep yields the empty string; a sep
// that never occurs yields the whole value.
func SubstringBefore(actual, sep *string) *string {
	if actual == nil {
		return nil
	}
	if sep == nil {
		return actual
	}
	if *sep == "" {
		return Ptr("")
	}
	idx := strings.Index(*actual, *sep)
	if idx < 0 {
		return actual
	}
	return Ptr((*actual)[:idx])
}

// SubstringAfter returns the portion of the actual value after
// the first occurrence of sep. A nil sep yields the empty
// string, as does a sep that never occurs; an empty sep yields
// the whole value.
func SubstringAfter(actual, sep *string) *string {
	if actual == nil {
		return nil
	}
	if sep == nil {
		return Ptr("")
	}
	if *sep == "" {
		return actual
	}
	idx := strings.Index(*actual, *sep)
	if idx < 0 {
		return Ptr("")
	}
	return Ptr((*actual)[idx+len(*sep):])
}

// SubstringBetween returns the portion of the actual value
// between the first occurrence of open and the first following
// occurrence of close. Absent delimiters or no such span yield
// nil.
func SubstringBetween(actual, open, close *string) *string {
	if actual == nil || open == nil || close == nil {
		return nil
	}
	start := strings.Index(*actual, *open)
	if start < 0 {
		return nil
	}
	start += len(*open)
	end := strings.Index((*actual)[start:], *close)
	if end < 0 {
		return nil
	}
	return Ptr((*actual)[start : start+end])
}
