package strpred

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEqualsIsReflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		assert.True(t, Equals(Ptr(s), Ptr(s)))
		assert.False(t, Equals(Ptr(s), nil))
		assert.False(t, Equals(nil, Ptr(s)))
	})
}

func TestNotEqualsIsNegationForRealStrings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.String().Draw(t, "a")
		b := rapid.String().Draw(t, "b")
		assert.Equal(t,
			!Equals(Ptr(a), Ptr(b)),
			NotEquals(Ptr(a), Ptr(b)),
		)
	})
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		got := Reverse(Reverse(Ptr(s)))
		if assert.NotNil(t, got) {
			assert.Equal(t, s, *got)
		}
	})
}

func TestLeftPadAtOrBelowLengthIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		length := len([]rune(s))
		size := rapid.IntRange(-5, length).Draw(t, "size")
		pad := rapid.String().Draw(t, "pad")

		got := LeftPad(Ptr(s), size, Ptr(pad))
		if assert.NotNil(t, got) {
			assert.Equal(t, s, *got)
		}
	})
}

func TestLeftPadProducesRequestedLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		size := rapid.IntRange(0, 200).Draw(t, "size")

		got := LeftPad(Ptr(s), size, Ptr("*"))
		if assert.NotNil(t, got) {
			want := len([]rune(s))
			if size > want {
				want = size
			}
			assert.Equal(t, want, len([]rune(*got)))
		}
	})
}

func TestStripWithNilAgreesWithTrim(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		stripped := Strip(Ptr(s), nil)
		trimmed := Trim(Ptr(s))
		if assert.NotNil(t, stripped) && assert.NotNil(t, trimmed) {
			assert.Equal(t, *trimmed, *stripped)
		}
	})
}

func TestCompareIsAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.String().Draw(t, "a")
		b := rapid.String().Draw(t, "b")
		assert.Equal(t,
			Signum(Compare(Ptr(a), Ptr(b))),
			-Signum(Compare(Ptr(b), Ptr(a))),
		)
	})
}

func TestLengthPredicatesPartitionForRealStrings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		n := rapid.IntRange(0, 50).Draw(t, "n")
		assert.NotEqual(t,
			LengthEquals(Ptr(s), n),
			LengthNotEquals(Ptr(s), n),
		)
	})
}
