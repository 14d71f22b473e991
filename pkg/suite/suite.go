// Package suite loads declarative verification suites from
// YAML and evaluates them non-fatally against named values. A
// suite is the query-mode counterpart of the verify façade:
// every check produces a Result record instead of failing the
// calling test, which suits readiness gates and batch reports.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Check describes a single named verification to evaluate
// against a target value. Expected, Candidates, and Pattern are
// nullable; a YAML null is a legal candidate entry.
type Check struct {
	// Name labels the check in results.
	Name string `yaml:"name"`

	// Op is the catalog operation (e.g. "equals",
	// "contains_ignore_case", "length_equals").
	Op string `yaml:"op"`

	// Target is the name of the value to check.
	Target string `yaml:"target"`

	// Expected is the expected value for single-value ops.
	Expected *string `yaml:"expected,omitempty"`

	// Candidates holds the ordered candidate sequence for
	// "any"/"none" family ops. Nulls and duplicates are legal
	// members.
	Candidates []*string `yaml:"candidates,omitempty"`

	// Pattern is the regular expression for matching ops.
	Pattern *string `yaml:"pattern,omitempty"`

	// N is the numeric argument for length and count ops.
	N int `yaml:"n,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `yaml:"message,omitempty"`
}

// Suite is an ordered collection of checks.
type Suite struct {
	// Name labels the suite in reports.
	Name string `yaml:"name"`

	// Checks are evaluated in order.
	Checks []Check `yaml:"checks"`
}

// Result captures the outcome of evaluating a single check.
type Result struct {
	Name     string `json:"name" yaml:"name"`
	Op       string `json:"op" yaml:"op"`
	Target   string `json:"target" yaml:"target"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Passed   bool   `json:"passed" yaml:"passed"`
	Message  string `json:"message" yaml:"message"`
}

// Load parses a suite from YAML bytes.
func Load(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite: %w", err,
		)
	}
	return &s, nil
}

// LoadFile parses a suite from a YAML file.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file: %w", err,
		)
	}
	return Load(data)
}
