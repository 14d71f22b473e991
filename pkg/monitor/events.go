// Package monitor captures verification outcomes as events and
// streams them to live dashboard clients over WebSocket.
package monitor

import "time"

// EventType represents the type of verification event.
type EventType string

const (
	EventPassed   EventType = "passed"
	EventFailed   EventType = "failed"
	EventTimedOut EventType = "timed_out"
)

// CheckEvent records the outcome of a single verify call.
type CheckEvent struct {
	Type      EventType     `json:"type"`
	Verifier  string        `json:"verifier,omitempty"`
	Operation string        `json:"operation"`
	Expected  string        `json:"expected,omitempty"`
	Actual    string        `json:"actual,omitempty"`
	Message   string        `json:"message,omitempty"`
	Attempts  int           `json:"attempts,omitempty"`
	Elapsed   time.Duration `json:"elapsed,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
