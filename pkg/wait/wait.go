// Package wait provides the bounded polling loop used by the
// verification engine. A Waiter repeatedly fetches a value and
// evaluates a condition against it until the condition holds or
// the configured timeout elapses. Polling is strictly
// sequential and single-threaded; the only suspension point is
// the sleep between ticks.
package wait

import "time"

// DefaultPollInterval is the tick spacing used when a Config
// does not specify its own.
const DefaultPollInterval = 250 * time.Millisecond

// Source produces the current value under observation. It may
// be impure (reading live state) but must be safe to call
// repeatedly without cumulative side effects.
type Source func() *string

// Condition evaluates the current value. It must be a pure
// function of its input.
type Condition func(*string) bool

// Config bounds a polling loop.
type Config struct {
	// Timeout is the maximum time to keep polling. Zero means
	// evaluate exactly once with no sleep.
	Timeout time.Duration

	// PollInterval is the sleep between ticks. Zero selects
	// DefaultPollInterval.
	PollInterval time.Duration
}

// Result reports how a polling loop terminated. Both terminal
// states carry the last observed value so callers can report an
// accurate actual even after a timeout.
type Result struct {
	// LastValue is the value observed on the final tick.
	LastValue *string

	// Satisfied is true when the condition held before the
	// timeout elapsed.
	Satisfied bool

	// Attempts is the number of fetch+evaluate ticks performed.
	Attempts int

	// Elapsed is the wall-clock time the loop ran.
	Elapsed time.Duration
}

// Waiter runs bounded polling loops with a fixed Config. The
// zero value is not usable; construct with New.
type Waiter struct {
	cfg   Config
	now   func() time.Time
	sleep func(time.Duration)
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithClock replaces the wall clock and sleep functions. This
// is intended for tests that need deterministic timing.
func WithClock(
	now func() time.Time,
	sleep func(time.Duration),
) Option {
	return func(w *Waiter) {
		w.now = now
		w.sleep = sleep
	}
}

// New creates a Waiter for the given config.
func New(cfg Config, opts ...Option) *Waiter {
	w := &Waiter{
		cfg:   cfg,
		now:   time.Now,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Until polls source until condition holds or the timeout
// elapses. The loop always evaluates at least once, and never
// sleeps past the point where the next tick would land beyond
// the deadline, so a zero timeout is exactly the single-fetch
// path.
func (w *Waiter) Until(source Source, condition Condition) Result {
	interval := w.cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := w.now()
	result := Result{}

	for {
		result.LastValue = source()
		result.Attempts++

		if condition(result.LastValue) {
			result.Satisfied = true
			break
		}

		elapsed := w.now().Sub(start)
		if elapsed+interval > w.cfg.Timeout {
			break
		}
		w.sleep(interval)
	}

	result.Elapsed = w.now().Sub(start)
	return result
}

// Until is a convenience that runs a single polling loop with
// the given config and the real clock. It is the non-assertive
// query form of the waiter contract: callers inspect
// Result.Satisfied instead of raising a failure.
func Until(cfg Config, source Source, condition Condition) Result {
	return New(cfg).Until(source, condition)
}

// For polls source until condition holds or timeout elapses and
// reports only whether the condition was met. It backs
// non-assertive readiness checks such as page-load polling.
func For(
	timeout time.Duration,
	source Source,
	condition Condition,
) bool {
	return Until(
		Config{Timeout: timeout},
		source,
		condition,
	).Satisfied
}
