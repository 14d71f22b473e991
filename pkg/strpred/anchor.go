package strpred

import "strings"

// hasPrefixFold reports whether s starts with prefix under
// case folding. It compares a window of len(prefix) bytes, so
// fold-equal pairs whose encodings differ in byte length (such
// as the long s) are not matched. That matches the simple
// same-width folding the anchoring operations are specified
// against.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// hasSuffixFold reports whether s ends with suffix under case
// folding, with the same same-width limitation as
// hasPrefixFold.
func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// StartsWith reports whether the actual value starts with the
// given prefix. Anchoring requires real strings on both sides;
// a nil actual or nil prefix fails.
func StartsWith(actual, prefix *string) bool {
	if actual == nil || prefix == nil {
		return false
	}
	return strings.HasPrefix(*actual, *prefix)
}

// StartsWithIgnoreCase is StartsWith under case folding.
func StartsWithIgnoreCase(actual, prefix *string) bool {
	if actual == nil || prefix == nil {
		return false
	}
	return hasPrefixFold(*actual, *prefix)
}

// StartsWithAny reports whether the actual value starts with at
// least one candidate prefix. Any nil candidate fails the whole
// predicate, as does a nil actual or nil sequence.
func StartsWithAny(actual *string, prefixes []*string) bool {
	if actual == nil || prefixes == nil {
		return false
	}
	for _, p := range prefixes {
		if p == nil {
			return false
		}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(*actual, *p) {
			return true
		}
	}
	return false
}

// StartsWithNone reports whether the actual value starts with
// none of the candidate prefixes. Nil candidates are legal
// members to exclude against and are skipped; a nil actual or
// nil sequence fails.
func StartsWithNone(actual *string, prefixes []*string) bool {
	if actual == nil || prefixes == nil {
		return false
	}
	for _, p := range prefixes {
		if p == nil {
			continue
		}
		if strings.HasPrefix(*actual, *p) {
			return false
		}
	}
	return true
}

// NotStartsWith reports whether the actual value does not start
// with the given prefix. Both sides must be real strings; a nil
// actual or nil prefix fails.
func NotStartsWith(actual, prefix *string) bool {
	if actual == nil || prefix == nil {
		return false
	}
	return !strings.HasPrefix(*actual, *prefix)
}

// EndsWith reports whether the actual value ends with the given
// suffix. A nil actual or nil suffix fails.
func EndsWith(actual, suffix *string) bool {
	if actual == nil || suffix == nil {
		return false
	}
	return strings.HasSuffix(*actual, *suffix)
}

// EndsWithIgnoreCase is EndsWith under case folding.
func EndsWithIgnoreCase(actual, suffix *string) bool {
	if actual == nil || suffix == nil {
		return false
	}
	return hasSuffixFold(*actual, *suffix)
}

// EndsWithAny reports whether the actual value ends with at
// least one candidate suffix. Any nil candidate fails the whole
// predicate.
func EndsWithAny(actual *string, suffixes []*string) bool {
	if actual == nil || suffixes == nil {
		return false
	}
	for _, s := range suffixes {
		if s == nil {
			return false
		}
	}
	for _, s := range suffixes {
		if strings.HasSuffix(*actual, *s) {
			return true
		}
	}
	return false
}

// EndsWithNone reports whether the actual value ends with none
// of the candidate suffixes. Nil candidates are skipped.
func EndsWithNone(actual *string, suffixes []*string) bool {
	if actual == nil || suffixes == nil {
		return false
	}
	for _, s := range suffixes {
		if s == nil {
			continue
		}
		if strings.HasSuffix(*actual, *s) {
			return false
		}
	}
	return true
}

// NotEndsWith reports whether the actual value does not end
// with the given suffix. A nil actual or nil suffix fails.
func NotEndsWith(actual, suffix *string) bool {
	if actual == nil || suffix == nil {
		return false
	}
	return !strings.HasSuffix(*actual, *suffix)
}

// Contains reports whether the actual value contains the given
// substring. Containment against or within null is undefined,
// so either side being nil fails.
func Contains(actual, substr *string) bool {
	if actual == nil || substr == nil {
		return false
	}
	return strings.Contains(*actual, *substr)
}

// ContainsIgnoreCase is Contains under case folding.
func ContainsIgnoreCase(actual, substr *string) bool {
	if actual == nil || substr == nil {
		return false
	}
	return strings.Contains(
		strings.ToLower(*actual),
		strings.ToLower(*substr),
	)
}

// NotContains reports whether the actual value does not contain
// the given substring. Either side being nil fails.
func NotContains(actual, substr *string) bool {
	if actual == nil || substr == nil {
		return false
	}
	return !strings.Contains(*actual, *substr)
}

// NotContainsIgnoreCase is NotContains under case folding.
func NotContainsIgnoreCase(actual, substr *string) bool {
	if actual == nil || substr == nil {
		return false
	}
	return !strings.Contains(
		strings.ToLower(*actual),
		strings.ToLower(*substr),
	)
}
