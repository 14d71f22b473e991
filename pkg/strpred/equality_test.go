package strpred

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		actual   *string
		expected *string
		want     bool
	}{
		{"same strings", Ptr("abc"), Ptr("abc"), true},
		{"different strings", Ptr("abc"), Ptr("abd"), false},
		{"both nil", nil, nil, true},
		{"actual nil", nil, Ptr("abc"), false},
		{"expected nil", Ptr("abc"), nil, false},
		{"empty strings", Ptr(""), Ptr(""), true},
		{"empty vs nil", Ptr(""), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equals(tt.actual, tt.expected))
		})
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	assert.True(t, EqualsIgnoreCase(Ptr("Some String"), Ptr("sOME sTRING")))
	assert.False(t, EqualsIgnoreCase(Ptr("some string"), Ptr("some strings")))
	assert.True(t, EqualsIgnoreCase(nil, nil))
	assert.False(t, EqualsIgnoreCase(nil, Ptr("x")))
	assert.False(t, EqualsIgnoreCase(Ptr("x"), nil))
}

func TestEqualsIgnoreWhitespace(t *testing.T) {
	assert.True(t, EqualsIgnoreWhitespace(
		Ptr("  some string    "), Ptr("somestring"),
	))
	assert.True(t, EqualsIgnoreWhitespace(
		Ptr("a b\tc\n"), Ptr("abc"),
	))
	assert.False(t, EqualsIgnoreWhitespace(Ptr("abc"), Ptr("abd")))
	assert.True(t, EqualsIgnoreWhitespace(nil, nil))
	assert.False(t, EqualsIgnoreWhitespace(nil, Ptr("")))
}

func TestNotEquals(t *testing.T) {
	// Asymmetric null handling: exactly one nil passes, both
	// nil fails.
	assert.True(t, NotEquals(nil, Ptr("x")))
	assert.True(t, NotEquals(Ptr("x"), nil))
	assert.False(t, NotEquals(nil, nil))
	assert.False(t, NotEquals(Ptr("x"), Ptr("x")))
	assert.True(t, NotEquals(Ptr("x"), Ptr("y")))
}

func TestEqualsAny(t *testing.T) {
	tests := []struct {
		name       string
		actual     *string
		candidates []*string
		want       bool
	}{
		{"match first", Ptr("a"), []*string{Ptr("a"), Ptr("b")}, true},
		{"match last", Ptr("b"), []*string{Ptr("a"), Ptr("b")}, true},
		{"no match", Ptr("c"), []*string{Ptr("a"), Ptr("b")}, false},
		{"nil actual, nil candidate", nil, []*string{Ptr("a"), nil}, true},
		{"nil actual, no nil candidate", nil, []*string{Ptr("a")}, false},
		{"nil candidate sequence", Ptr("a"), nil, false},
		{"duplicates are legal", Ptr("a"), []*string{Ptr("a"), Ptr("a")}, true},
		{"empty sequence", Ptr("a"), []*string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualsAny(tt.actual, tt.candidates))
		})
	}
}

func TestEqualsAnyIgnoreCase(t *testing.T) {
	assert.True(t, EqualsAnyIgnoreCase(
		Ptr("ABC"), []*string{Ptr("x"), Ptr("abc")},
	))
	assert.False(t, EqualsAnyIgnoreCase(
		Ptr("abc"), []*string{Ptr("x"), Ptr("y")},
	))
	assert.True(t, EqualsAnyIgnoreCase(nil, []*string{nil}))
}

func TestEqualsNone(t *testing.T) {
	tests := []struct {
		name       string
		actual     *string
		candidates []*string
		want       bool
	}{
		{"no candidate matches", Ptr("c"), []*string{Ptr("a"), Ptr("b")}, true},
		{"a candidate matches", Ptr("a"), []*string{Ptr("a"), Ptr("b")}, false},
		{"nil actual excluded by nil candidate", nil, []*string{Ptr("a"), nil}, false},
		{"nil actual, no nil candidate", nil, []*string{Ptr("a")}, true},
		{"nil candidate sequence fails", Ptr("a"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualsNone(tt.actual, tt.candidates))
		})
	}
}

func TestEqualsNoneIgnoreCase(t *testing.T) {
	assert.False(t, EqualsNoneIgnoreCase(
		Ptr("ABC"), []*string{Ptr("abc")},
	))
	assert.True(t, EqualsNoneIgnoreCase(
		Ptr("abc"), []*string{Ptr("x")},
	))
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name       string
		actual     *string
		candidates []*string
		want       bool
	}{
		{"one contained", Ptr("hello world"), []*string{Ptr("nope"), Ptr("world")}, true},
		{"none contained", Ptr("hello"), []*string{Ptr("x"), Ptr("y")}, false},
		{"nil actual fails", nil, []*string{nil, Ptr("x")}, false},
		{"nil candidates skipped", Ptr("abc"), []*string{nil, Ptr("b")}, true},
		{"nil sequence fails", Ptr("abc"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsAny(tt.actual, tt.candidates))
		})
	}
}

func TestContainsAnyIgnoreCase(t *testing.T) {
	assert.True(t, ContainsAnyIgnoreCase(
		Ptr("  some string    "), []*string{Ptr("STRING")},
	))
	assert.False(t, ContainsAnyIgnoreCase(
		Ptr("some string"), []*string{Ptr("numbers")},
	))
}
