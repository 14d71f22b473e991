package suite

import "strings"

// ParseCheckString parses a compact check string of the form
// "op:value" into its components. If no colon is present the
// entire string is treated as the operation and the expected
// value is nil.
//
// Examples:
//
//	"contains:ready"  -> ("contains", "ready")
//	"is_not_blank"    -> ("is_not_blank", nil)
//	"length_equals:8" -> ("length_equals", "8")
func ParseCheckString(s string) (op string, expected *string) {
	parts := strings.SplitN(s, ":", 2)
	op = parts[0]

	if len(parts) > 1 {
		expected = &parts[1]
	}

	return
}
