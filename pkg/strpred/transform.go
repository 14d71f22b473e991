package strpred

import (
	"strings"
	"unicode/utf8"
)

// Transform-then-compare helpers. All transforms are nil-in,
// nil-out for the actual value. A nil needle, pad, or strip
// argument degrades to a no-op (or the documented default)
// rather than failing; transform predicates only fail through
// the final equality check.

// RemoveStart strips one leading occurrence of remove from the
// actual value. A nil or empty remove is a no-op.
func RemoveStart(actual, remove *string) *string {
	if actual == nil {
		return nil
	}
	if remove == nil || *remove == "" {
		return actual
	}
	if strings.HasPrefix(*actual, *remove) {
		return Ptr((*actual)[len(*remove):])
	}
	return actual
}

// RemoveStartIgnoreCase is RemoveStart under case folding.
func RemoveStartIgnoreCase(actual, remove *string) *string {
	if actual == nil {
		return nil
	}
	if remove == nil || *remove == "" {
		return actual
	}
	if hasPrefixFold(*actual, *remove) {
		return Ptr((*actual)[len(*remove):])
	}
	return actual
}

// RemoveEnd strips one trailing occurrence of remove from the
// actual value. A nil or empty remove is a no-op.
func RemoveEnd(actual, remove *string) *string {
	if actual == nil {
		return nil
	}
	if remove == nil || *remove == "" {
		return actual
	}
	if strings.HasSuffix(*actual, *remove) {
		return Ptr((*actual)[:len(*actual)-len(*remove)])
	}
	return actual
}

// RemoveEndIgnoreCase is RemoveEnd under case folding.
func RemoveEndIgnoreCase(actual, remove *string) *string {
	if actual == nil {
		return nil
	}
	if remove == nil || *remove == "" {
		return actual
	}
	if hasSuffixFold(*actual, *remove) {
		return Ptr((*actual)[:len(*actual)-len(*remove)])
	}
	return actual
}

// Remove strips every occurrence of remove from the actual
// value. A nil or empty remove is a no-op.
func Remove(actual, remove *string) *string {
	if actual == nil {
		return nil
	}
	if remove == nil || *remove == "" {
		return actual
	}
	return Ptr(strings.ReplaceAll(*actual, *remove, ""))
}

// Replace substitutes every occurrence of old with new in the
// actual value. A nil or empty old, or a nil new, is a no-op.
func Replace(actual, old, new *string) *string {
	if actual == nil {
		return nil
	}
	if old == nil || *old == "" || new == nil {
		return actual
	}
	return Ptr(strings.ReplaceAll(*actual, *old, *new))
}

// ReplaceOnce substitutes only the first occurrence of old with
// new. Null arguments degrade the same way as Replace.
func ReplaceOnce(actual, old, new *string) *string {
	if actual == nil {
		return nil
	}
	if old == nil || *old == "" || new == nil {
		return actual
	}
	return Ptr(strings.Replace(*actual, *old, *new, 1))
}

// ReplaceIgnoreCase substitutes every case-insensitive
// occurrence of old with new. Null arguments degrade the same
// way as Replace. Matching walks the value rune by rune, so
// case pairs whose encodings differ in byte length still line
// up.
func ReplaceIgnoreCase(actual, old, new *string) *string {
	if actual == nil {
		return nil
	}
	if old == nil || *old == "" || new == nil {
		return actual
	}

	src := *actual
	needle := strings.ToLower(*old)

	var b strings.Builder
	for src != "" {
		idx, width := foldIndex(src, needle)
		if idx < 0 {
			b.WriteString(src)
			break
		}
		b.WriteString(src[:idx])
		b.WriteString(*new)
		src = src[idx+width:]
	}
	return Ptr(b.String())
}

// foldIndex locates the first window of s whose lowercase form
// equals needle (itself already lowercase). It returns the byte
// offset and byte width of that window within s, or (-1, 0)
// when no window matches. Every index is derived from s itself,
// never from a lowered copy, since case mapping can change byte
// lengths.
func foldIndex(s, needle string) (int, int) {
	for i := range s {
		if w := foldMatchLen(s[i:], needle); w >= 0 {
			return i, w
		}
	}
	return -1, 0
}

// foldMatchLen returns the byte length of the prefix of s whose
// lowercase form equals needle, or -1 when s does not start
// with such a prefix.
func foldMatchLen(s, needle string) int {
	w := 0
	for needle != "" {
		if w >= len(s) {
			return -1
		}
		r, size := utf8.DecodeRuneInString(s[w:])
		low := strings.ToLower(string(r))
		if !strings.HasPrefix(needle, low) {
			return -1
		}
		needle = needle[len(low):]
		w += size
	}
	return w
}

// Reverse returns the actual value with its characters in
// reverse order.
func Reverse(actual *string) *string {
	if actual == nil {
		return nil
	}
	runes := []rune(*actual)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return Ptr(string(runes))
}

// Trim removes leading and trailing whitespace from the actual
// value.
func Trim(actual *string) *string {
	if actual == nil {
		return nil
	}
	return Ptr(strings.TrimSpace(*actual))
}

// Truncate shortens the actual value to at most maxWidth
// characters. A negative maxWidth clamps to zero.
func Truncate(actual *string, maxWidth int) *string {
	if actual == nil {
		return nil
	}
	if maxWidth <= 0 {
		return Ptr("")
	}
	runes := []rune(*actual)
	if maxWidth >= len(runes) {
		return actual
	}
	return Ptr(string(runes[:maxWidth]))
}

// Strip removes leading and trailing characters drawn from
// chars. A nil chars falls back to whitespace stripping, so
// Strip(s, nil) and Trim(s) agree.
func Strip(actual, chars *string) *string {
	if actual == nil {
		return nil
	}
	if chars == nil {
		return Ptr(strings.TrimSpace(*actual))
	}
	return Ptr(strings.Trim(*actual, *chars))
}

// StripStart removes leading characters drawn from chars, with
// the same whitespace default as Strip.
func StripStart(actual, chars *string) *string {
	if actual == nil {
		return nil
	}
	if chars == nil {
		return Ptr(strings.TrimLeft(*actual, " \t\n\v\f\r"))
	}
	return Ptr(strings.TrimLeft(*actual, *chars))
}

// StripEnd removes trailing characters drawn from chars, with
// the same whitespace default as Strip.
func StripEnd(actual, chars *string) *string {
	if actual == nil {
		return nil
	}
	if chars == nil {
		return Ptr(strings.TrimRight(*actual, " \t\n\v\f\r"))
	}
	return Ptr(strings.TrimRight(*actual, *chars))
}

// padding builds a pad string of exactly n characters by
// repeating pad and truncating the overflow.
func padding(n int, pad string) string {
	if n <= 0 {
		return ""
	}
	padRunes := []rune(pad)
	out := make([]rune, n)
	for i := range out {
		out[i] = padRunes[i%len(padRunes)]
	}
	return string(out)
}

// LeftPad grows the actual value to size characters by
// prepending pad. A nil or empty pad defaults to a single
// space; a size at or below the current length leaves the
// value unchanged.
func LeftPad(actual *string, size int, pad *string) *string {
	if actual == nil {
		return nil
	}
	p := " "
	if pad != nil && *pad != "" {
		p = *pad
	}
	n := size - len([]rune(*actual))
	if n <= 0 {
		return actual
	}
	return Ptr(padding(n, p) + *actual)
}

// RightPad grows the actual value to size characters by
// appending pad, with the same defaults as LeftPad.
func RightPad(actual *string, size int, pad *string) *string {
	if actual == nil {
		return nil
	}
	p := " "
	if pad != nil && *pad != "" {
		p = *pad
	}
	n := size - len([]rune(*actual))
	if n <= 0 {
		return actual
	}
	return Ptr(*actual + padding(n, p))
}

// Center grows the actual value to size characters by padding
// both sides, giving the extra character to the right side when
// the padding is odd, with the same defaults as LeftPad.
func Center(actual *string, size int, pad *string) *string {
	if actual == nil {
		return nil
	}
	length := len([]rune(*actual))
	if size <= length {
		return actual
	}
	left := LeftPad(actual, length+(size-length)/2, pad)
	return RightPad(left, size, pad)
}
