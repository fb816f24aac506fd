// Package bus carries "these storage keys changed" notifications
// between otherwise decoupled parts of the app. Widgets re-derive
// their state from storage on every notification, so delivery is a
// hint, never a data channel.
package bus

import (
	"sync"

	"github.com/charmbracelet/log"
)

type handler struct {
	id int
	fn func(keys []string)
}

type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers []handler
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns its disposer. Handlers registered
// while a publish is in flight only see subsequent publishes.
func (b *Bus) Subscribe(fn func(keys []string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, handler{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, h := range b.handlers {
			if h.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish notifies every currently registered handler synchronously in
// registration order. A panicking handler is logged and skipped; the
// rest still run. With no subscribers the event is simply lost.
func (b *Bus) Publish(keys ...string) {
	if len(keys) == 0 {
		return
	}
	b.mu.Lock()
	snapshot := make([]handler, len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.Unlock()

	for _, h := range snapshot {
		invoke(h, keys)
	}
}

func invoke(h handler, keys []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("change handler panicked", "panic", r, "keys", keys)
		}
	}()
	h.fn(keys)
}
