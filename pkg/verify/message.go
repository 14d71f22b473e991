package verify

import (
	"fmt"
	"strconv"
	"strings"
)

// nullRendering is how an absent value appears in messages.
const nullRendering = "<nil>"

// renderValue formats a nullable string for failure messages.
func renderValue(v *string) string {
	if v == nil {
		return nullRendering
	}
	return strconv.Quote(*v)
}

// renderCandidates formats an ordered candidate sequence.
func renderCandidates(candidates []*string) string {
	if candidates == nil {
		return nullRendering
	}
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, renderValue(c))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// failureMessage builds the single string handed to the failure
// mechanism. The default form is the operation description plus
// expected and actual. When the caller supplied a message
// template, it is rendered by positional substitution and the
// expected/actual detail is appended, so the last observed
// value is always part of the message. Formatting never
// panics: surplus verbs render fmt's explicit MISSING marker
// instead of raising a secondary error.
func failureMessage(
	op, expected, actual string,
	msgAndArgs []any,
) string {
	detail := fmt.Sprintf(
		"expected: %s, actual: %s", expected, actual,
	)
	if len(msgAndArgs) == 0 {
		return fmt.Sprintf("%s: %s", op, detail)
	}
	return fmt.Sprintf(
		"%s (%s: %s)",
		renderMsgAndArgs(msgAndArgs), op, detail,
	)
}

// renderMsgAndArgs renders a caller-supplied message template
// and parameter list. A lone non-string argument is printed
// verbatim; a leading string acts as the positional template
// for the remaining parameters.
func renderMsgAndArgs(msgAndArgs []any) string {
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	if template, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(template, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
