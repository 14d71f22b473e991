package monitor

import (
	"sync"
	"time"
)

// EventCollector captures verification events and aggregate
// statistics. It is safe for concurrent use.
type EventCollector struct {
	mu       sync.RWMutex
	events   []CheckEvent
	handlers []func(CheckEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate verification statistics.
type CollectorStats struct {
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	TimedOut  int       `json:"timed_out"`
	StartTime time.Time `json:"start_time"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]CheckEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(CheckEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event CheckEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventPassed:
		c.stats.Passed++
	case EventFailed:
		c.stats.Failed++
	case EventTimedOut:
		c.stats.TimedOut++
	}
	handlers := make([]func(CheckEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// Events returns a copy of all recorded events.
func (c *EventCollector) Events() []CheckEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]CheckEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// PassRate returns the fraction of passed checks, or zero when
// nothing has been recorded yet.
func (c *EventCollector) PassRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stats.Total == 0 {
		return 0
	}
	return float64(c.stats.Passed) / float64(c.stats.Total)
}
