package style

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// Handler receives style events on the stream's dispatch goroutine.
type Handler func(ctx context.Context, ev Event)

// Stream delivers style events to subscribers. Events may be published
// from any goroutine; they are dispatched one at a time, in order, by the
// single goroutine running [Stream.Run].
type Stream struct {
	events chan Event
	done   chan struct{}

	mu     sync.Mutex
	subs   map[string]*Subscription
	order  []string // subscription ids in subscribe order
	closed bool
}

// NewStream creates a stream with the given event buffer size.
func NewStream(buffer int) *Stream {
	return &Stream{
		events: make(chan Event, max(0, buffer)),
		done:   make(chan struct{}),
		subs:   make(map[string]*Subscription),
	}
}

// Subscription is a handle returned by [Stream.Subscribe].
type Subscription struct {
	id     string
	stream *Stream
	fn     Handler

	mu        sync.Mutex // held while fn runs
	cancelled atomic.Bool
	once      sync.Once
}

// ID returns the subscription's unique id.
func (s *Subscription) ID() string { return s.id }

// Active reports whether the subscription has not been cancelled.
func (s *Subscription) Active() bool { return !s.cancelled.Load() }

// Cancel unsubscribes. It waits for an in-flight callback to return, and
// after it returns the handler is never invoked again. Cancel is safe to
// call more than once, but must not be called from inside the handler.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.mu.Lock()
		s.cancelled.Store(true)
		s.mu.Unlock()
		s.stream.remove(s.id)
	})
}

func (s *Subscription) deliver(ctx context.Context, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled.Load() {
		return
	}
	s.fn(ctx, ev)
}

// Subscribe registers fn. Subscribing to a closed stream returns a
// subscription that is already cancelled.
func (s *Stream) Subscribe(fn Handler) *Subscription {
	sub := &Subscription{id: uuid.NewString(), stream: s, fn: fn}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sub.cancelled.Store(true)
		return sub
	}
	s.subs[sub.id] = sub
	s.order = append(s.order, sub.id)
	return sub
}

func (s *Stream) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Stream) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Publish queues ev for dispatch. It blocks while the buffer is full and
// fails if ctx ends first or the stream is closed.
func (s *Stream) Publish(ctx context.Context, ev Event) error {
	select {
	case <-s.done:
		return errors.New(errors.ErrCodeStreamClosed, "style stream closed")
	default:
	}
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return errors.New(errors.ErrCodeStreamClosed, "style stream closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run dispatches queued events until ctx ends or the stream is closed.
// Exactly one goroutine should call Run.
func (s *Stream) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case ev := <-s.events:
			s.dispatch(ctx, ev)
		}
	}
}

func (s *Stream) dispatch(ctx context.Context, ev Event) {
	s.mu.Lock()
	targets := make([]*Subscription, 0, len(s.order))
	for _, id := range s.order {
		targets = append(targets, s.subs[id])
	}
	s.mu.Unlock()

	for _, sub := range targets {
		sub.deliver(ctx, ev)
	}
}

// Close stops dispatch and cancels every subscription. Events still
// queued are dropped. Close is idempotent and, like Cancel, must not be
// called from inside a handler.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}
