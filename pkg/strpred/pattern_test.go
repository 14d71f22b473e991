package strpred

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		actual  *string
		pattern *string
		want    bool
	}{
		{"full match", Ptr("abc123"), Ptr(`^[a-z]+\d+$`), true},
		{"partial match", Ptr("abc123"), Ptr(`\d+`), true},
		{"no match", Ptr("abc"), Ptr(`^\d+$`), false},
		{"nil actual", nil, Ptr(`.*`), false},
		{"nil pattern", Ptr("abc"), nil, false},
		{"invalid pattern", Ptr("abc"), Ptr(`[`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.actual, tt.pattern))
		})
	}
}

func TestNotMatches(t *testing.T) {
	assert.True(t, NotMatches(Ptr("abc"), Ptr(`^\d+$`)))
	assert.False(t, NotMatches(Ptr("123"), Ptr(`^\d+$`)))
	// Null is never a valid non-match.
	assert.False(t, NotMatches(nil, Ptr(`^\d+$`)))
	assert.False(t, NotMatches(Ptr("abc"), nil))
	assert.False(t, NotMatches(Ptr("abc"), Ptr(`[`)))
}

func TestMatchesRegexp(t *testing.T) {
	re := regexp.MustCompile(`^ready$`)
	assert.True(t, MatchesRegexp(Ptr("ready"), re))
	assert.False(t, MatchesRegexp(Ptr("loading"), re))
	assert.False(t, MatchesRegexp(nil, re))
	assert.False(t, MatchesRegexp(Ptr("ready"), nil))
}

func TestNotMatchesRegexp(t *testing.T) {
	re := regexp.MustCompile(`^ready$`)
	assert.True(t, NotMatchesRegexp(Ptr("loading"), re))
	assert.False(t, NotMatchesRegexp(Ptr("ready"), re))
	assert.False(t, NotMatchesRegexp(nil, re))
	assert.False(t, NotMatchesRegexp(Ptr("loading"), nil))
}

func TestNumberOfMatches(t *testing.T) {
	assert.Equal(t, 3, NumberOfMatches(Ptr("a1b2c3"), Ptr(`\d`)))
	assert.Equal(t, 0, NumberOfMatches(Ptr("abc"), Ptr(`\d`)))
	// Nil actual, nil pattern, and invalid pattern all count
	// as zero occurrences by convention.
	assert.Equal(t, 0, NumberOfMatches(nil, Ptr(`\d`)))
	assert.Equal(t, 0, NumberOfMatches(Ptr("a1"), nil))
	assert.Equal(t, 0, NumberOfMatches(Ptr("a1"), Ptr(`[`)))
}
