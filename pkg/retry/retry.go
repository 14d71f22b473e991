// Package retry defines the whole-test retry policy consulted
// by a harness after an entire test method has failed. It is
// deliberately decoupled from in-call waiting: the wait package
// bounds a single predicate poll, while a retry policy decides
// whether to re-execute a complete test function, unaware of
// which predicate failed inside it.
package retry

import "time"

// Outcome describes a completed run of a test method.
type Outcome struct {
	// Name identifies the test method.
	Name string

	// Failed is true when the run ended in a failure.
	Failed bool

	// Message carries the failure message, if any.
	Message string

	// Attempt is the 1-based run counter.
	Attempt int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Policy decides whether a failed test method should be run
// again.
type Policy interface {
	// ShouldRetry reports whether the harness should re-execute
	// the test method that produced the given outcome.
	ShouldRetry(outcome Outcome) bool
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(Outcome) bool

// ShouldRetry calls the wrapped function.
func (f PolicyFunc) ShouldRetry(outcome Outcome) bool {
	return f(outcome)
}

// Never returns a policy that never retries.
func Never() Policy {
	return PolicyFunc(func(Outcome) bool { return false })
}

// MaxAttempts returns a policy that retries failed runs until
// the test method has been attempted n times in total.
func MaxAttempts(n int) Policy {
	return PolicyFunc(func(o Outcome) bool {
		return o.Failed && o.Attempt < n
	})
}

// Run executes fn under the given policy, re-running it while
// the policy allows. It returns the outcome of the final
// attempt.
func Run(policy Policy, name string, fn func() error) Outcome {
	attempt := 0
	for {
		attempt++
		start := time.Now()
		err := fn()

		outcome := Outcome{
			Name:     name,
			Failed:   err != nil,
			Attempt:  attempt,
			Duration: time.Since(start),
		}
		if err != nil {
			outcome.Message = err.Error()
		}

		if !outcome.Failed || !policy.ShouldRetry(outcome) {
			return outcome
		}
	}
}
