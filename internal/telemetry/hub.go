// Package telemetry distributes acquisition events: per-attempt capture
// outcomes, retries, and degraded-data detections. A Hub keeps a bounded
// history and fans events out to live subscribers.
package telemetry

import (
	"sync"
	"time"
)

// Kind classifies an acquisition event.
type Kind string

const (
	KindAttempt   Kind = "attempt"
	KindRetry     Kind = "retry"
	KindDegraded  Kind = "degraded"
	KindCompleted Kind = "completed"
	KindFailed    Kind = "failed"
)

// Event is one acquisition telemetry point.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Kind        Kind      `json:"kind"`
	Attempt     int       `json:"attempt,omitempty"`
	Samples     int       `json:"samples,omitempty"`
	Frequency   float64   `json:"frequency,omitempty"`
	SampleRate  float64   `json:"sampleRate,omitempty"`
	Detail      string    `json:"detail,omitempty"`
}

// Reporter receives acquisition events.
type Reporter interface {
	Report(Event)
}

const defaultHistoryLimit = 500

// Hub collects history and fans out events to subscribers.
type Hub struct {
	mu           sync.RWMutex
	history      []Event
	historyLimit int
	subscribers  map[chan Event]struct{}
}

// NewHub builds a hub keeping at most historyLimit events; a non-positive
// limit selects the default.
func NewHub(historyLimit int) *Hub {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Hub{
		historyLimit: historyLimit,
		subscribers:  make(map[chan Event]struct{}),
	}
}

// Report implements Reporter and records a new event. A missing timestamp
// is filled in.
func (h *Hub) Report(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	h.mu.Lock()
	h.history = append(h.history, ev)
	if len(h.history) > h.historyLimit {
		h.history = h.history[len(h.history)-h.historyLimit:]
	}
	for ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
	h.mu.Unlock()
}

// History returns a copy of the stored events.
func (h *Hub) History() []Event {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Event, len(h.history))
	copy(out, h.history)
	return out
}

// Subscribe registers a listener for live events. The returned cancel
// unregisters and closes the channel.
func (h *Hub) Subscribe() (chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	cancel := func() {
		h.mu.Lock()
		delete(h.subscribers, ch)
		close(ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// MultiReporter fans out events to multiple destinations.
type MultiReporter []Reporter

// Report forwards the event to each configured reporter.
func (m MultiReporter) Report(ev Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ev)
		}
	}
}
