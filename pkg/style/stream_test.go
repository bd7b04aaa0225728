package style

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// runStream starts dispatch and returns a stop function that waits for Run
// to return.
func runStream(t *testing.T, s *Stream) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStreamDeliversInOrder(t *testing.T) {
	s := NewStream(4)
	stop := runStream(t, s)
	defer stop()

	var mu sync.Mutex
	var got []ColorStyleID
	s.Subscribe(func(_ context.Context, ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev[SettingColorStyle].(ColorChoice).ID)
	})

	ctx := context.Background()
	for _, id := range []ColorStyleID{Green, Blue, White} {
		if err := s.Publish(ctx, Event{SettingColorStyle: ColorChoice{ID: id}}); err != nil {
			t.Fatalf("Publish error: %v", err)
		}
	}

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	})
	mu.Lock()
	defer mu.Unlock()
	if got[0] != Green || got[1] != Blue || got[2] != White {
		t.Errorf("delivery order = %v, want [green blue white]", got)
	}
}

func TestSubscriptionCancelStopsDelivery(t *testing.T) {
	s := NewStream(4)
	stop := runStream(t, s)
	defer stop()

	var mu sync.Mutex
	calls := 0
	sub := s.Subscribe(func(context.Context, Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	if sub.ID() == "" {
		t.Error("subscription should have an id")
	}

	ctx := context.Background()
	_ = s.Publish(ctx, Event{})
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	})

	sub.Cancel()
	sub.Cancel() // idempotent
	if sub.Active() {
		t.Error("cancelled subscription reports active")
	}
	if s.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", s.Subscribers())
	}

	// A marker subscriber tells us when later events have been dispatched.
	seen := make(chan struct{}, 4)
	s.Subscribe(func(context.Context, Event) { seen <- struct{}{} })
	for range 3 {
		_ = s.Publish(ctx, Event{})
	}
	for range 3 {
		<-seen
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestCancelWaitsForInFlightHandler(t *testing.T) {
	s := NewStream(1)
	stop := runStream(t, s)
	defer stop()

	entered := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	sub := s.Subscribe(func(context.Context, Event) {
		close(entered)
		<-release
		finished = true
	})

	_ = s.Publish(context.Background(), Event{})
	<-entered

	cancelled := make(chan struct{})
	go func() {
		sub.Cancel()
		close(cancelled)
	}()

	select {
	case <-cancelled:
		t.Fatal("Cancel returned while the handler was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-cancelled
	if !finished {
		t.Error("handler did not finish before Cancel returned")
	}
}

func TestStreamClose(t *testing.T) {
	s := NewStream(1)
	sub := s.Subscribe(func(context.Context, Event) {})

	s.Close()
	s.Close() // idempotent

	if sub.Active() {
		t.Error("Close should cancel subscriptions")
	}
	if err := s.Publish(context.Background(), Event{}); !errors.Is(err, errors.ErrCodeStreamClosed) {
		t.Errorf("Publish after Close = %v, want STREAM_CLOSED", err)
	}
	if err := s.Run(context.Background()); err != nil {
		t.Errorf("Run after Close = %v, want nil", err)
	}

	late := s.Subscribe(func(context.Context, Event) {})
	if late.Active() {
		t.Error("subscribing to a closed stream should yield a cancelled subscription")
	}
}

func TestPublishRespectsContext(t *testing.T) {
	s := NewStream(0) // unbuffered and nobody running
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := s.Publish(ctx, Event{}); err != context.DeadlineExceeded {
		t.Errorf("Publish = %v, want %v", err, context.DeadlineExceeded)
	}
}
