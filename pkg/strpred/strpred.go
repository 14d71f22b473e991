// Package strpred implements the nullable-string predicate
// catalog used by the verification engine. Every predicate is a
// pure function over *string values, where a nil pointer
// represents an absent (null) value. Null is a fully supported
// input for every operation, never an error condition; each
// predicate family encodes its own null policy explicitly.
//
// Negative ("Not"/"None") variants are not derived from their
// positive counterparts because their null policies were
// authored independently and differ once nulls are involved.
package strpred

import (
	"strings"
	"unicode"
)

// Ptr returns a pointer to s. It is a convenience for building
// nullable-string arguments and candidate sequences.
func Ptr(s string) *string {
	return &s
}

// stripWhitespace removes every unicode whitespace rune from s.
func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
