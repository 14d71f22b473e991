// Package verify implements the verification façade used by
// test code. A Verifier binds a deferred value accessor and an
// optional wait mode to the string predicate catalog; each
// verify method fetches the current value (once, or via the
// bounded waiter), evaluates one predicate, and on failure
// raises a single fatal, formatted message on the calling test
// context. On success it returns the receiver so calls chain.
package verify

import (
	"time"

	"digital.vasic.verify/pkg/logging"
	"digital.vasic.verify/pkg/monitor"
	"digital.vasic.verify/pkg/wait"
)

// TestingT is the minimal surface the engine needs from a test
// harness context. *testing.T satisfies it.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ValueSource is a zero-argument accessor producing the current
// value under test. It may be impure (reading live state) and
// must tolerate repeated calls when wait mode is enabled. A nil
// result is a valid value, never an error.
type ValueSource func() *string

// Verifier binds a ValueSource and a wait-mode flag to the
// predicate catalog. It is immutable after construction; create
// one per logical thing being checked, immediately before a
// chain of verify calls.
type Verifier struct {
	source    ValueSource
	useWaiter bool
	waiter    *wait.Waiter
	logger    logging.Logger
	collector *monitor.EventCollector
	name      string
}

// Option configures a Verifier at construction time.
type Option func(*Verifier)

// WithWaiter enables wait mode: each verify call polls the
// value source under the given config until the predicate holds
// or the timeout elapses. Extra wait options (such as a test
// clock) pass through to the waiter.
func WithWaiter(cfg wait.Config, opts ...wait.Option) Option {
	return func(v *Verifier) {
		v.useWaiter = true
		v.waiter = wait.New(cfg, opts...)
	}
}

// WithLogger attaches a structured logger that observes check
// outcomes.
func WithLogger(logger logging.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// WithCollector attaches a monitor collector that receives a
// CheckEvent for every verify call.
func WithCollector(collector *monitor.EventCollector) Option {
	return func(v *Verifier) {
		v.collector = collector
	}
}

// WithName labels the verifier in events and log entries.
func WithName(name string) Option {
	return func(v *Verifier) {
		v.name = name
	}
}

// New creates a Verifier over the given value source.
func New(source ValueSource, opts ...Option) *Verifier {
	v := &Verifier{
		source: source,
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Value creates a Verifier over a fixed nullable value.
func Value(value *string, opts ...Option) *Verifier {
	return New(func() *string { return value }, opts...)
}

// String creates a Verifier over a fixed non-null string.
func String(value string, opts ...Option) *Verifier {
	return Value(&value, opts...)
}

// check runs one logical evaluation: a single fetch, or a
// bounded fetch+test loop in wait mode. On failure it builds
// the message and raises exactly one fatal error on t.
func (v *Verifier) check(
	t TestingT,
	op string,
	condition func(*string) bool,
	expected string,
	msgAndArgs []any,
) *Verifier {
	t.Helper()

	var (
		last     *string
		ok       bool
		attempts = 1
		elapsed  time.Duration
	)

	if v.useWaiter {
		res := v.waiter.Until(wait.Source(v.source), condition)
		last = res.LastValue
		ok = res.Satisfied
		attempts = res.Attempts
		elapsed = res.Elapsed
	} else {
		last = v.source()
		ok = condition(last)
	}

	actual := renderValue(last)

	if ok {
		v.logger.Debug("check_passed",
			logging.F("operation", op),
			logging.F("actual", actual),
			logging.F("attempts", attempts),
		)
		v.emit(monitor.EventPassed, op, expected, actual,
			"", attempts, elapsed)
		return v
	}

	msg := failureMessage(op, expected, actual, msgAndArgs)

	v.logger.Error("check_failed",
		logging.F("operation", op),
		logging.F("expected", expected),
		logging.F("actual", actual),
		logging.F("attempts", attempts),
	)

	eventType := monitor.EventFailed
	if v.useWaiter {
		eventType = monitor.EventTimedOut
	}
	v.emit(eventType, op, expected, actual, msg,
		attempts, elapsed)

	t.Fatalf("%s", msg)
	return v
}

// emit forwards a check outcome to the attached collector, if
// any.
func (v *Verifier) emit(
	eventType monitor.EventType,
	op, expected, actual, msg string,
	attempts int,
	elapsed time.Duration,
) {
	if v.collector == nil {
		return
	}
	v.collector.Emit(monitor.CheckEvent{
		Type:      eventType,
		Verifier:  v.name,
		Operation: op,
		Expected:  expected,
		Actual:    actual,
		Message:   msg,
		Attempts:  attempts,
		Elapsed:   elapsed,
	})
}
