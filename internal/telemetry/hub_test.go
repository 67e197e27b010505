package telemetry

import (
	"fmt"
	"testing"
	"time"
)

func TestHubKeepsBoundedHistory(t *testing.T) {
	hub := NewHub(5)
	for i := 0; i < 12; i++ {
		hub.Report(Event{Kind: KindAttempt, Attempt: i + 1})
	}

	history := hub.History()
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	if history[0].Attempt != 8 || history[4].Attempt != 12 {
		t.Errorf("history kept wrong window: first attempt %d, last %d", history[0].Attempt, history[4].Attempt)
	}
}

func TestHubFillsTimestamp(t *testing.T) {
	hub := NewHub(0)
	hub.Report(Event{Kind: KindCompleted})
	if got := hub.History()[0].Timestamp; got.IsZero() {
		t.Error("hub should stamp events missing a timestamp")
	}

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hub.Report(Event{Kind: KindCompleted, Timestamp: fixed})
	if got := hub.History()[1].Timestamp; !got.Equal(fixed) {
		t.Errorf("hub overwrote a provided timestamp: %v", got)
	}
}

func TestHubFansOutToSubscribers(t *testing.T) {
	hub := NewHub(0)
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Report(Event{Kind: KindRetry, Attempt: 2})

	select {
	case ev := <-ch:
		if ev.Kind != KindRetry || ev.Attempt != 2 {
			t.Errorf("received %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}
}

func TestHubDropsEventsForSlowSubscribers(t *testing.T) {
	hub := NewHub(0)
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Overfill the subscriber buffer; Report must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Report(Event{Kind: KindAttempt, Attempt: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Report blocked on a slow subscriber")
	}
	if len(ch) != cap(ch) {
		t.Errorf("subscriber buffer has %d events, want full buffer %d", len(ch), cap(ch))
	}
}

type recordingReporter struct {
	events []Event
}

func (r *recordingReporter) Report(ev Event) { r.events = append(r.events, ev) }

func TestMultiReporterForwardsToAll(t *testing.T) {
	a := &recordingReporter{}
	b := &recordingReporter{}
	m := MultiReporter{a, nil, b}

	for i := 0; i < 3; i++ {
		m.Report(Event{Kind: KindAttempt, Detail: fmt.Sprintf("n%d", i)})
	}
	if len(a.events) != 3 || len(b.events) != 3 {
		t.Errorf("forwarded %d and %d events, want 3 each", len(a.events), len(b.events))
	}
}
