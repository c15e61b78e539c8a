// Package event provides the synchronous topic-keyed event bus that
// decouples the simulation from its collaborators, together with the
// closed set of event payloads it carries.
package event

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Topic names a stream of events.
type Topic string

// Event is implemented by every payload type. Each payload belongs to
// exactly one topic.
type Event interface {
	Topic() Topic
}

// Handler reacts to a published event. A returned error is logged by the
// bus and does not stop delivery to other handlers.
type Handler func(Event) error

type subscription struct {
	id uint64
	fn Handler
}

// Bus dispatches events synchronously to subscribers in subscription order.
// The bus is owned by one run and is not shared between goroutines during
// dispatch; the mutex only guards registration.
type Bus struct {
	mu         sync.Mutex
	subs       map[Topic][]subscription
	nextID     uint64
	generation uint64
	logger     *log.Logger
}

// NewBus creates an empty bus. A nil logger discards handler failures.
func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.New(discard{})
	}
	return &Bus{
		subs:   make(map[Topic][]subscription),
		logger: logger,
	}
}

// Subscribe registers h for topic and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[topic]
	for i, s := range list {
		if s.id == id {
			next := make([]subscription, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(b.subs, topic)
			} else {
				b.subs[topic] = next
			}
			return
		}
	}
}

// Publish delivers ev to every handler subscribed to its topic at the time
// of the call. Handlers subscribed during dispatch see only later events.
// If Clear is called by a handler, the remaining handlers of the
// interrupted dispatch are skipped.
func (b *Bus) Publish(ev Event) {
	if ev == nil {
		return
	}
	topic := ev.Topic()

	b.mu.Lock()
	snapshot := b.subs[topic]
	gen := b.generation
	b.mu.Unlock()

	for _, s := range snapshot {
		b.mu.Lock()
		stale := b.generation != gen
		b.mu.Unlock()
		if stale {
			return
		}
		b.deliver(topic, s.fn, ev)
	}
}

func (b *Bus) deliver(topic Topic, fn Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "topic", topic, "error", fmt.Sprint(r))
		}
	}()
	if err := fn(ev); err != nil {
		b.logger.Error("event handler failed", "topic", topic, "error", err)
	}
}

// Clear removes every subscription on every topic.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Topic][]subscription)
	b.generation++
}

// Count returns the number of handlers subscribed to topic.
func (b *Bus) Count(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

// On subscribes fn to the topic of payload type T.
func On[T Event](b *Bus, fn func(T)) func() {
	return Handle(b, func(ev T) error {
		fn(ev)
		return nil
	})
}

// Handle subscribes a fallible fn to the topic of payload type T.
func Handle[T Event](b *Bus, fn func(T) error) func() {
	var zero T
	return b.Subscribe(zero.Topic(), func(ev Event) error {
		typed, ok := ev.(T)
		if !ok {
			return fmt.Errorf("event: unexpected payload %T on topic %s", ev, ev.Topic())
		}
		return fn(typed)
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
