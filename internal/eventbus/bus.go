// Package eventbus fans delivery events out to subscribers asynchronously.
// Events are queued on a buffered channel and drained by a small worker pool,
// so publishing never blocks a request.
package eventbus

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultWorkers    = 2
	defaultBufferSize = 256
)

// Options configures a bus. Zero values select the defaults.
type Options struct {
	Workers    int
	BufferSize int
	Logger     *slog.Logger
	// OnDrop is called for every event discarded because the buffer was full.
	OnDrop func(Event)
}

// EventBus publishes events to every subscribed listener.
type EventBus interface {
	// Publish enqueues an event. It never blocks; when the buffer is full the
	// event is dropped.
	Publish(eventType, channel string, payload map[string]string)

	// Subscribe registers a listener for all events published afterwards.
	Subscribe(listener Listener)

	// Close stops accepting events and waits until queued ones are handled.
	Close()
}

type inMemoryBus struct {
	ch        chan Event
	listeners []Listener
	mu        sync.RWMutex
	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    bool
	logger    *slog.Logger
	onDrop    func(Event)
}

// New creates an in-memory EventBus and starts its workers.
func New(opts Options) EventBus {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &inMemoryBus{
		ch:     make(chan Event, opts.BufferSize),
		logger: opts.Logger,
		onDrop: opts.OnDrop,
	}
	for i := 0; i < opts.Workers; i++ {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			for e := range b.ch {
				b.dispatch(e)
			}
		}()
	}
	return b
}

func (b *inMemoryBus) dispatch(e Event) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event listener panicked", "event", e.Type, "panic", r)
				}
			}()
			l(e)
		}()
	}
}

func (b *inMemoryBus) Publish(eventType, channel string, payload map[string]string) {
	e := Event{
		Type:      eventType,
		Channel:   channel,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		b.drop(e, "bus closed")
		return
	}

	select {
	case b.ch <- e:
	default:
		b.drop(e, "buffer full")
	}
}

func (b *inMemoryBus) drop(e Event, reason string) {
	b.logger.Warn("dropping event", "event", e.Type, "reason", reason)
	if b.onDrop != nil {
		b.onDrop(e)
	}
}

func (b *inMemoryBus) Subscribe(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

func (b *inMemoryBus) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		close(b.ch)
		b.mu.Unlock()
	})
	b.wg.Wait()
}
