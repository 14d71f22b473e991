package strpred

import "regexp"

// Matches reports whether the actual value matches the given
// regular expression pattern. Matching requires a real string
// and a real pattern: a nil actual or nil pattern fails, as
// does a pattern that does not compile.
func Matches(actual, pattern *string) bool {
	if actual == nil || pattern == nil {
		return false
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return false
	}
	return re.MatchString(*actual)
}

// MatchesRegexp is Matches against a precompiled pattern. A nil
// actual or nil pattern fails.
func MatchesRegexp(actual *string, re *regexp.Regexp) bool {
	if actual == nil || re == nil {
		return false
	}
	return re.MatchString(*actual)
}

// NotMatches reports whether the actual value does not match
// the given pattern. Null is never a valid non-match: a nil
// actual fails this direction too, as does a nil or invalid
// pattern.
func NotMatches(actual, pattern *string) bool {
	if actual == nil || pattern == nil {
		return false
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return false
	}
	return !re.MatchString(*actual)
}

// NotMatchesRegexp is NotMatches against a precompiled pattern.
func NotMatchesRegexp(actual *string, re *regexp.Regexp) bool {
	if actual == nil || re == nil {
		return false
	}
	return !re.MatchString(*actual)
}

// NumberOfMatches counts non-overlapping occurrences of the
// pattern in the actual value. A nil actual, nil pattern, or
// invalid pattern counts as zero occurrences by convention.
func NumberOfMatches(actual, pattern *string) int {
	if actual == nil || pattern == nil {
		return 0
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return 0
	}
	return len(re.FindAllString(*actual, -1))
}
