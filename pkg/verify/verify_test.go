package verify

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.verify/pkg/monitor"
	"digital.vasic.verify/pkg/strpred"
	"digital.vasic.verify/pkg/wait"
)

// recorder stands in for *testing.T so failure behavior can be
// observed instead of aborting the test.
type recorder struct {
	failed  bool
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestEqualsPassesForIdenticalStrings(t *testing.T) {
	r := &recorder{}
	String("some string").Equals(r, strpred.Ptr("some string"))
	assert.False(t, r.failed)
}

func TestEqualsNullPolicy(t *testing.T) {
	t.Run("both absent pass", func(t *testing.T) {
		r := &recorder{}
		Value(nil).Equals(r, nil)
		assert.False(t, r.failed)
	})

	t.Run("absent actual fails", func(t *testing.T) {
		r := &recorder{}
		Value(nil).Equals(r, strpred.Ptr("x"))
		assert.True(t, r.failed)
	})

	t.Run("absent expected fails", func(t *testing.T) {
		r := &recorder{}
		String("x").Equals(r, nil)
		assert.True(t, r.failed)
	})
}

func TestNotEqualsPassesWhenExactlyOneSideAbsent(t *testing.T) {
	r := &recorder{}
	Value(nil).NotEquals(r, strpred.Ptr("x"))
	String("x").NotEquals(r, nil)
	assert.False(t, r.failed)

	Value(nil).NotEquals(r, nil)
	assert.True(t, r.failed)
}

func TestFailureMessageDefaultShape(t *testing.T) {
	r := &recorder{}
	String("actual value").Equals(r, strpred.Ptr("wanted"))

	require.True(t, r.failed)
	assert.Equal(t,
		`equals: expected: "wanted", actual: "actual value"`,
		r.message,
	)
}

func TestFailureMessageRendersNull(t *testing.T) {
	r := &recorder{}
	Value(nil).Equals(r, strpred.Ptr("wanted"))

	require.True(t, r.failed)
	assert.Equal(t,
		`equals: expected: "wanted", actual: <nil>`,
		r.message,
	)
}

func TestFailureMessageWithCustomMessage(t *testing.T) {
	r := &recorder{}
	String("b").Equals(r, strpred.Ptr("a"), "checkout total mismatch")

	require.True(t, r.failed)
	assert.Equal(t,
		`checkout total mismatch (equals: expected: "a", actual: "b")`,
		r.message,
	)
}

func TestFailureMessageWithTemplateAndParams(t *testing.T) {
	r := &recorder{}
	String("b").Equals(r, strpred.Ptr("a"),
		"order %s failed after %d tries", "ORD-17", 3)

	require.True(t, r.failed)
	assert.Contains(t, r.message, "order ORD-17 failed after 3 tries")
	assert.Contains(t, r.message, `expected: "a", actual: "b"`)
}

func TestFailureMessageSurplusVerbsNeverPanic(t *testing.T) {
	r := &recorder{}
	assert.NotPanics(t, func() {
		String("b").Equals(r, strpred.Ptr("a"),
			"got %s but also %s", "one")
	})
	require.True(t, r.failed)
	assert.Contains(t, r.message, "%!s(MISSING)")
}

func TestVerifyCallsChain(t *testing.T) {
	r := &recorder{}
	String("  some string    ").
		ContainsIgnoreCase(r, strpred.Ptr("STRING")).
		StartsWith(r, strpred.Ptr("  some")).
		LengthNotEquals(r, 3)
	assert.False(t, r.failed)
}

func TestFailureStopsAtFirstMessage(t *testing.T) {
	// A real *testing.T would abort at the first Fatalf; the
	// recorder keeps the first message for inspection.
	r := &recorder{}
	String("abc").Equals(r, strpred.Ptr("xyz"))
	first := r.message
	String("abc").Equals(r, strpred.Ptr("xyz"), "second")
	assert.True(t, r.failed)
	assert.NotEqual(t, first, r.message)
}

func TestWaitModeSucceedsWhenValueFlips(t *testing.T) {
	clock := &stubClock{current: time.Unix(0, 0)}
	calls := 0
	source := func() *string {
		calls++
		if calls <= 2 {
			return strpred.Ptr("loading")
		}
		return strpred.Ptr("ready")
	}

	r := &recorder{}
	New(source, WithWaiter(wait.Config{
		Timeout:      300 * time.Millisecond,
		PollInterval: 100 * time.Millisecond,
	}, wait.WithClock(clock.now, clock.sleep))).
		Equals(r, strpred.Ptr("ready"))

	assert.False(t, r.failed)
	assert.Equal(t, 3, calls)
}

func TestWaitModeReportsLastObservedValueOnTimeout(t *testing.T) {
	clock := &stubClock{current: time.Unix(0, 0)}
	source := func() *string { return strpred.Ptr("loading") }

	r := &recorder{}
	New(source, WithWaiter(wait.Config{
		Timeout:      150 * time.Millisecond,
		PollInterval: 100 * time.Millisecond,
	}, wait.WithClock(clock.now, clock.sleep))).
		Equals(r, strpred.Ptr("ready"))

	require.True(t, r.failed)
	assert.Equal(t,
		`equals: expected: "ready", actual: "loading"`,
		r.message,
	)
}

func TestCollectorReceivesOutcomes(t *testing.T) {
	collector := monitor.NewEventCollector()
	r := &recorder{}

	v := String("abc",
		WithCollector(collector),
		WithName("checkout"),
	)
	v.Equals(r, strpred.Ptr("abc"))
	v.Equals(r, strpred.Ptr("xyz"))

	events := collector.Events()
	require.Len(t, events, 2)

	assert.Equal(t, monitor.EventPassed, events[0].Type)
	assert.Equal(t, "checkout", events[0].Verifier)
	assert.Equal(t, "equals", events[0].Operation)

	assert.Equal(t, monitor.EventFailed, events[1].Type)
	assert.Contains(t, events[1].Message, `expected: "xyz"`)

	stats := collector.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Passed)
	assert.Equal(t, 1, stats.Failed)
}

func TestWaitModeTimeoutEmitsTimedOutEvent(t *testing.T) {
	clock := &stubClock{current: time.Unix(0, 0)}
	collector := monitor.NewEventCollector()
	r := &recorder{}

	New(func() *string { return strpred.Ptr("loading") },
		WithWaiter(wait.Config{
			Timeout:      50 * time.Millisecond,
			PollInterval: 100 * time.Millisecond,
		}, wait.WithClock(clock.now, clock.sleep)),
		WithCollector(collector),
	).Equals(r, strpred.Ptr("ready"))

	events := collector.Events()
	require.Len(t, events, 1)
	assert.Equal(t, monitor.EventTimedOut, events[0].Type)
	assert.Equal(t, 1, events[0].Attempts)
}

// stubClock mirrors the wait package test clock: sleeping
// advances time instead of blocking.
type stubClock struct {
	current time.Time
}

func (c *stubClock) now() time.Time { return c.current }

func (c *stubClock) sleep(d time.Duration) {
	c.current = c.current.Add(d)
}
