package timber

import (
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 64

// Entry is a single log call as observed by a [Publisher].
type Entry struct {
	// Time is when the call reached the publisher.
	Time time.Time
	// Level is the call's severity.
	Level Level
	// Tag is the consumed one-time tag, empty when none was set.
	Tag string
	// Message is the log message, possibly empty.
	Message string
	// Args holds the extra values, forwarded unchanged. Callers must not
	// modify the slice.
	Args []any
}

// Publisher is a [Sink] that fans each log call out to subscribers as a
// structured [Entry].
//
// Delivery uses a buffered channel per [Subscription] with ring-buffer
// semantics: when a subscriber's channel is full the oldest entry is dropped
// so Log never blocks. Useful for feeding live logs to a TUI or a test
// harness. Safe for concurrent use.
//
// Create instances with [NewPublisher] and plant with [New]:
//
//	pub := timber.NewPublisher()
//	timber.Plant(timber.New(pub))
//
//	sub := pub.Subscribe()
//	go func() {
//	    for entry := range sub.C() {
//	        // render entry
//	    }
//	}()
type Publisher struct {
	subscribers []*Subscription
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n < 1 {
			n = 1
		}

		p.bufSize = n
	}
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Log implements [Sink]: the call becomes an [Entry] delivered to every
// active subscription. When a subscriber's channel is full the oldest entry
// is dropped to make room. Closed subscriptions are compacted out of the
// subscriber list. After [Publisher.Close], Log is a no-op.
func (p *Publisher) Log(level Level, tag, msg string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	entry := Entry{
		Time:    time.Now(),
		Level:   level,
		Tag:     tag,
		Message: msg,
		Args:    args,
	}

	// Compact closed subscriptions and deliver in one pass.
	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}
		// Ring-buffer: drop oldest if full.
		select {
		case sub.ch <- entry:
		default:
			<-sub.ch

			sub.ch <- entry
		}

		alive = append(alive, sub)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(p.subscribers); i++ {
		p.subscribers[i] = nil
	}

	p.subscribers = alive
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan Entry, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close marks the Publisher as closed, closes all subscription channels,
// and releases the subscriber list. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil

	return nil
}

// Subscription receives entries from a [Publisher].
type Subscription struct {
	ch     chan Entry
	closed atomic.Bool
}

// C returns the read-only channel that delivers entries.
func (s *Subscription) C() <-chan Entry {
	return s.ch
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel on its next Log or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
