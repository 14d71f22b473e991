package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.verify/pkg/strpred"
)

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "<nil>", renderValue(nil))
	assert.Equal(t, `"abc"`, renderValue(strpred.Ptr("abc")))
	assert.Equal(t, `""`, renderValue(strpred.Ptr("")))
	// Quoting keeps invisible characters visible in messages.
	assert.Equal(t, `"a\tb"`, renderValue(strpred.Ptr("a\tb")))
}

func TestRenderCandidates(t *testing.T) {
	assert.Equal(t, "<nil>", renderCandidates(nil))
	assert.Equal(t, "[]", renderCandidates([]*string{}))
	assert.Equal(t,
		`["a", <nil>, "b"]`,
		renderCandidates([]*string{
			strpred.Ptr("a"), nil, strpred.Ptr("b"),
		}),
	)
}

func TestRenderMsgAndArgs(t *testing.T) {
	assert.Equal(t, "plain", renderMsgAndArgs([]any{"plain"}))
	assert.Equal(t, "42", renderMsgAndArgs([]any{42}))
	assert.Equal(t, "x=1 y=two",
		renderMsgAndArgs([]any{"x=%d y=%s", 1, "two"}))
	// A non-string head falls back to a plain join.
	assert.Equal(t, "1 2", renderMsgAndArgs([]any{1, 2}))
}
