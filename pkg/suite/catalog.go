package suite

import (
	"fmt"
	"strconv"
	"sync"

	"digital.vasic.verify/pkg/strpred"
)

// Evaluator evaluates one check operation against a concrete
// value. It returns whether the check passed and a
// human-readable explanation.
type Evaluator func(check Check, actual *string) (bool, string)

// Catalog maps operation names to evaluators. It is safe for
// concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
}

// NewCatalog creates a Catalog with all built-in evaluators
// pre-registered.
func NewCatalog() *Catalog {
	c := &Catalog{
		evaluators: make(map[string]Evaluator),
	}
	c.registerDefaults()
	return c
}

// registerDefaults registers the built-in evaluators.
func (c *Catalog) registerDefaults() {
	c.evaluators["equals"] = evalEquals
	c.evaluators["equals_ignore_case"] = evalEqualsIgnoreCase
	c.evaluators["not_equals"] = evalNotEquals
	c.evaluators["equals_any"] = evalEqualsAny
	c.evaluators["equals_none"] = evalEqualsNone
	c.evaluators["contains"] = evalContains
	c.evaluators["contains_ignore_case"] = evalContainsIgnoreCase
	c.evaluators["not_contains"] = evalNotContains
	c.evaluators["contains_any"] = evalContainsAny
	c.evaluators["starts_with"] = evalStartsWith
	c.evaluators["not_starts_with"] = evalNotStartsWith
	c.evaluators["ends_with"] = evalEndsWith
	c.evaluators["not_ends_with"] = evalNotEndsWith
	c.evaluators["matches"] = evalMatches
	c.evaluators["not_matches"] = evalNotMatches
	c.evaluators["is_blank"] = evalIsBlank
	c.evaluators["is_not_blank"] = evalIsNotBlank
	c.evaluators["is_empty"] = evalIsEmpty
	c.evaluators["is_not_empty"] = evalIsNotEmpty
	c.evaluators["is_alpha"] = evalIsAlpha
	c.evaluators["is_alphanumeric"] = evalIsAlphanumeric
	c.evaluators["is_numeric"] = evalIsNumeric
	c.evaluators["length_equals"] = evalLengthEquals
	c.evaluators["length_not_equals"] = evalLengthNotEquals
	c.evaluators["number_of_matches_equals"] = evalNumberOfMatches
}

// Register adds a custom evaluator for the given operation.
// Returns an error if the operation is already registered.
func (c *Catalog) Register(op string, evaluator Evaluator) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.evaluators[op]; exists {
		return fmt.Errorf(
			"operation already registered: %s", op,
		)
	}

	c.evaluators[op] = evaluator
	return nil
}

// Has returns true if the given operation has a registered
// evaluator.
func (c *Catalog) Has(op string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.evaluators[op]
	return exists
}

// Evaluate runs a single check against the provided value.
func (c *Catalog) Evaluate(check Check, value *string) Result {
	c.mu.RLock()
	evaluator, exists := c.evaluators[check.Op]
	c.mu.RUnlock()

	result := Result{
		Name:     check.Name,
		Op:       check.Op,
		Target:   check.Target,
		Expected: render(check.Expected),
		Actual:   render(value),
	}

	if !exists {
		result.Message = fmt.Sprintf(
			"unknown operation: %s", check.Op,
		)
		return result
	}

	passed, message := evaluator(check, value)
	result.Passed = passed
	result.Message = message
	if !passed && check.Message != "" {
		result.Message = check.Message + ": " + message
	}
	return result
}

// EvaluateAll runs every check in the suite against a map of
// named values, keyed by each check's Target. A missing target
// fails the check.
func (c *Catalog) EvaluateAll(
	s *Suite,
	values map[string]*string,
) []Result {
	results := make([]Result, 0, len(s.Checks))

	for _, check := range s.Checks {
		value, exists := values[check.Target]
		if !exists {
			results = append(results, Result{
				Name:   check.Name,
				Op:     check.Op,
				Target: check.Target,
				Message: fmt.Sprintf(
					"target not found: %s", check.Target,
				),
			})
			continue
		}

		results = append(results, c.Evaluate(check, value))
	}

	return results
}

// AllPassed reports whether every result in the slice passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// --- built-in evaluators ---

func render(v *string) string {
	if v == nil {
		return "<nil>"
	}
	return strconv.Quote(*v)
}

func verdict(passed bool, op string, check Check, actual *string) (bool, string) {
	if passed {
		return true, fmt.Sprintf(
			"%s satisfied by %s", op, render(actual),
		)
	}
	return false, fmt.Sprintf(
		"%s not satisfied: expected %s, actual %s",
		op, render(check.Expected), render(actual),
	)
}

func evalEquals(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.Equals(actual, check.Expected),
		"equals", check, actual,
	)
}

func evalEqualsIgnoreCase(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.EqualsIgnoreCase(actual, check.Expected),
		"equals_ignore_case", check, actual,
	)
}

func evalNotEquals(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.NotEquals(actual, check.Expected),
		"not_equals", check, actual,
	)
}

func evalEqualsAny(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.EqualsAny(actual, check.Candidates),
		"equals_any", check, actual,
	)
}

func evalEqualsNone(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.EqualsNone(actual, check.Candidates),
		"equals_none", check, actual,
	)
}

func evalContains(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.Contains(actual, check.Expected),
		"contains", check, actual,
	)
}

func evalContainsIgnoreCase(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.ContainsIgnoreCase(actual, check.Expected),
		"contains_ignore_case", check, actual,
	)
}

func evalNotContains(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.NotContains(actual, check.Expected),
		"not_contains", check, actual,
	)
}

func evalContainsAny(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.ContainsAny(actual, check.Candidates),
		"contains_any", check, actual,
	)
}

func evalStartsWith(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.StartsWith(actual, check.Expected),
		"starts_with", check, actual,
	)
}

func evalNotStartsWith(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.NotStartsWith(actual, check.Expected),
		"not_starts_with", check, actual,
	)
}

func evalEndsWith(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.EndsWith(actual, check.Expected),
		"ends_with", check, actual,
	)
}

func evalNotEndsWith(check Check, actual *string) (bool, string) {
	return verdict(
		strpred.NotEndsWith(actual, check.Expected),
		"not_ends_with", check, actual,
	)
}

func evalMatches(check Check, actual *string) (bool, string) {
	if strpred.Matches(actual, check.Pattern) {
		return true, fmt.Sprintf(
			"matches %s", render(check.Pattern),
		)
	}
	return false, fmt.Sprintf(
		"%s does not match %s",
		render(actual), render(check.Pattern),
	)
}

func evalNotMatches(check Check, actual *string) (bool, string) {
	if strpred.NotMatches(actual, check.Pattern) {
		return true, fmt.Sprintf(
			"does not match %s", render(check.Pattern),
		)
	}
	return false, fmt.Sprintf(
		"%s matches %s (or is absent)",
		render(actual), render(check.Pattern),
	)
}

func unaryVerdict(passed bool, op string, actual *string) (bool, string) {
	if passed {
		return true, fmt.Sprintf(
			"%s satisfied by %s", op, render(actual),
		)
	}
	return false, fmt.Sprintf(
		"%s not satisfied by %s", op, render(actual),
	)
}

func evalIsBlank(_ Check, actual *string) (bool, string) {
	return unaryVerdict(strpred.IsBlank(actual), "is_blank", actual)
}

func evalIsNotBlank(_ Check, actual *string) (bool, string) {
	return unaryVerdict(
		strpred.IsNotBlank(actual), "is_not_blank", actual,
	)
}

func evalIsEmpty(_ Check, actual *string) (bool, string) {
	return unaryVerdict(strpred.IsEmpty(actual), "is_empty", actual)
}

func evalIsNotEmpty(_ Check, actual *string) (bool, string) {
	return unaryVerdict(
		strpred.IsNotEmpty(actual), "is_not_empty", actual,
	)
}

func evalIsAlpha(_ Check, actual *string) (bool, string) {
	return unaryVerdict(strpred.IsAlpha(actual), "is_alpha", actual)
}

func evalIsAlphanumeric(_ Check, actual *string) (bool, string) {
	return unaryVerdict(
		strpred.IsAlphanumeric(actual), "is_alphanumeric", actual,
	)
}

func evalIsNumeric(_ Check, actual *string) (bool, string) {
	return unaryVerdict(
		strpred.IsNumeric(actual), "is_numeric", actual,
	)
}

func evalLengthEquals(check Check, actual *string) (bool, string) {
	if strpred.LengthEquals(actual, check.N) {
		return true, fmt.Sprintf("length is %d", check.N)
	}
	return false, fmt.Sprintf(
		"length of %s is not %d", render(actual), check.N,
	)
}

func evalLengthNotEquals(check Check, actual *string) (bool, string) {
	if strpred.LengthNotEquals(actual, check.N) {
		return true, fmt.Sprintf("length is not %d", check.N)
	}
	return false, fmt.Sprintf(
		"length of %s is %d", render(actual), check.N,
	)
}

func evalNumberOfMatches(check Check, actual *string) (bool, string) {
	if actual == nil {
		return false, "value is absent"
	}
	count := strpred.NumberOfMatches(actual, check.Pattern)
	if count == check.N {
		return true, fmt.Sprintf(
			"%d matches of %s", count, render(check.Pattern),
		)
	}
	return false, fmt.Sprintf(
		"%d matches of %s, expected %d",
		count, render(check.Pattern), check.N,
	)
}
