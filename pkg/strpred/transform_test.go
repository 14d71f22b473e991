package strpred

import "testing"

func TestRemoveStart(t *testing.T) {
	eq(t, Ptr("llo"), RemoveStart(Ptr("hello"), Ptr("he")))
	eq(t, Ptr("hello"), RemoveStart(Ptr("hello"), Ptr("lo")))
	// Nil remove degrades to a no-op.
	eq(t, Ptr("hello"), RemoveStart(Ptr("hello"), nil))
	eq(t, Ptr("hello"), RemoveStart(Ptr("hello"), Ptr("")))
	eq(t, nil, RemoveStart(nil, Ptr("he")))
}

func TestRemoveStartIgnoreCase(t *testing.T) {
	eq(t, Ptr("llo"), RemoveStartIgnoreCase(Ptr("Hello"), Ptr("HE")))
	eq(t, Ptr("Hello"), RemoveStartIgnoreCase(Ptr("Hello"), Ptr("LO")))
	eq(t, nil, RemoveStartIgnoreCase(nil, Ptr("he")))
}

func TestRemoveEnd(t *testing.T) {
	eq(t, Ptr("hel"), RemoveEnd(Ptr("hello"), Ptr("lo")))
	eq(t, Ptr("hello"), RemoveEnd(Ptr("hello"), Ptr("he")))
	eq(t, Ptr("hello"), RemoveEnd(Ptr("hello"), nil))
	eq(t, nil, RemoveEnd(nil, Ptr("lo")))
}

func TestRemoveEndIgnoreCase(t *testing.T) {
	eq(t, Ptr("Hel"), RemoveEndIgnoreCase(Ptr("Hello"), Ptr("LO")))
	eq(t, Ptr("Hello"), RemoveEndIgnoreCase(Ptr("Hello"), Ptr("HE")))
}

func TestRemove(t *testing.T) {
	eq(t, Ptr("hllo"), Remove(Ptr("hello"), Ptr("e")))
	eq(t, Ptr("heo"), Remove(Ptr("hello"), Ptr("ll")))
	eq(t, Ptr("hello"), Remove(Ptr("hello"), nil))
	eq(t, nil, Remove(nil, Ptr("e")))
}

func TestReplace(t *testing.T) {
	eq(t, Ptr("haha"), Replace(Ptr("hehe"), Ptr("e"), Ptr("a")))
	// Nil needle or nil replacement degrades to a no-op.
	eq(t, Ptr("hehe"), Replace(Ptr("hehe"), nil, Ptr("a")))
	eq(t, Ptr("hehe"), Replace(Ptr("hehe"), Ptr("e"), nil))
	eq(t, nil, Replace(nil, Ptr("e"), Ptr("a")))
}

func TestReplaceOnce(t *testing.T) {
	eq(t, Ptr("hahe"), ReplaceOnce(Ptr("hehe"), Ptr("e"), Ptr("a")))
	eq(t, Ptr("hehe"), ReplaceOnce(Ptr("hehe"), nil, Ptr("a")))
}

func TestReplaceIgnoreCase(t *testing.T) {
	eq(t, Ptr("xx"), ReplaceIgnoreCase(Ptr("AbaB"), Ptr("ab"), Ptr("x")))
	eq(t, Ptr("hello"), ReplaceIgnoreCase(Ptr("hello"), Ptr("xyz"), Ptr("q")))
	eq(t, Ptr("hehe"), ReplaceIgnoreCase(Ptr("hehe"), nil, Ptr("a")))
	eq(t, nil, ReplaceIgnoreCase(nil, Ptr("e"), Ptr("a")))
}

func TestReplaceIgnoreCaseWidthChangingCase(t *testing.T) {
	// Ⱥ (U+023A, 2 bytes) lowercases to ⱥ (U+2C65, 3 bytes), and
	// İ (U+0130, 2 bytes) lowercases to i (1 byte). The match
	// positions must come from the original value, not from its
	// lowered copy, or the surrounding text is sliced at the
	// wrong offsets.
	eq(t, Ptr("ȺȺȺȺX"),
		ReplaceIgnoreCase(Ptr("ȺȺȺȺab"), Ptr("ab"), Ptr("X")))
	eq(t, Ptr("İİİİX"),
		ReplaceIgnoreCase(Ptr("İİİİab"), Ptr("ab"), Ptr("X")))

	// The needle itself may match runes of a different width.
	eq(t, Ptr("xx"),
		ReplaceIgnoreCase(Ptr("Ⱥⱥ"), Ptr("ⱥ"), Ptr("x")))
}

func TestReverse(t *testing.T) {
	// Character-exact reversal, whitespace preserved.
	eq(t, Ptr(" s   gnirts emos  "), Reverse(Ptr("  some string   s ")))
	eq(t, Ptr("olleh"), Reverse(Ptr("hello")))
	eq(t, Ptr(""), Reverse(Ptr("")))
	eq(t, Ptr("abc"), Reverse(Reverse(Ptr("abc"))))
	eq(t, nil, Reverse(nil))
}

func TestTrim(t *testing.T) {
	eq(t, Ptr("some string"), Trim(Ptr("  some string    ")))
	eq(t, Ptr(""), Trim(Ptr("   ")))
	eq(t, nil, Trim(nil))
}

func TestTruncate(t *testing.T) {
	eq(t, Ptr("he"), Truncate(Ptr("hello"), 2))
	eq(t, Ptr("hello"), Truncate(Ptr("hello"), 10))
	eq(t, Ptr(""), Truncate(Ptr("hello"), 0))
	eq(t, Ptr(""), Truncate(Ptr("hello"), -3))
	eq(t, nil, Truncate(nil, 2))
}

func TestStrip(t *testing.T) {
	// A nil strip set falls back to whitespace, identical to
	// stripping with an explicit space argument for this
	// input.
	eq(t, Ptr("some string"), Strip(Ptr("  some string    "), nil))
	eq(t, Ptr("some string"), Strip(Ptr("  some string    "), Ptr(" ")))
	eq(t, Ptr("ell"), Strip(Ptr("hello"), Ptr("ho")))
	eq(t, nil, Strip(nil, Ptr(" ")))
}

func TestStripStartAndEnd(t *testing.T) {
	eq(t, Ptr("some string    "), StripStart(Ptr("  some string    "), nil))
	eq(t, Ptr("  some string"), StripEnd(Ptr("  some string    "), nil))
	eq(t, Ptr("llo"), StripStart(Ptr("hello"), Ptr("he")))
	eq(t, Ptr("he"), StripEnd(Ptr("hello"), Ptr("lo")))
	eq(t, nil, StripStart(nil, nil))
	eq(t, nil, StripEnd(nil, nil))
}

func TestLeftPad(t *testing.T) {
	eq(t, Ptr("  abc"), LeftPad(Ptr("abc"), 5, nil))
	eq(t, Ptr("xyxabc"), LeftPad(Ptr("abc"), 6, Ptr("xy")))
	// Size at or below the current length leaves the value
	// unchanged, regardless of pad.
	eq(t, Ptr("abc"), LeftPad(Ptr("abc"), 3, Ptr("x")))
	eq(t, Ptr("abc"), LeftPad(Ptr("abc"), 1, Ptr("x")))
	eq(t, nil, LeftPad(nil, 5, Ptr("x")))
}

func TestRightPad(t *testing.T) {
	eq(t, Ptr("abc  "), RightPad(Ptr("abc"), 5, nil))
	eq(t, Ptr("abcxyx"), RightPad(Ptr("abc"), 6, Ptr("xy")))
	eq(t, Ptr("abc"), RightPad(Ptr("abc"), 2, Ptr("x")))
	eq(t, nil, RightPad(nil, 5, Ptr("x")))
}

func TestCenter(t *testing.T) {
	eq(t, Ptr(" ab  "), Center(Ptr("ab"), 5, nil))
	eq(t, Ptr("xabxx"), Center(Ptr("ab"), 5, Ptr("x")))
	eq(t, Ptr("ab"), Center(Ptr("ab"), 2, Ptr("x")))
	eq(t, nil, Center(nil, 5, Ptr("x")))
}
