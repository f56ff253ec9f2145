package events

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type subscription struct {
	pattern string
	handler EventHandler
}

// MemoryBus is an in-process event bus. Handlers run synchronously on the
// publishing goroutine; a handler error aborts delivery of the remaining
// events in the batch.
type MemoryBus struct {
	mu            sync.RWMutex
	subscriptions []subscription
}

// NewMemoryBus creates a new in-memory event bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// Publish delivers events to every matching subscriber
func (b *MemoryBus) Publish(ctx context.Context, events ...*Event) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subscriptions))
	copy(subs, b.subscriptions)
	b.mu.RUnlock()

	for _, event := range events {
		for _, sub := range subs {
			if !event.MatchesType(sub.pattern) {
				continue
			}
			if err := sub.handler.Handle(ctx, event); err != nil {
				return errors.Wrapf(err, "failed to handle event %s", event.EventType)
			}
		}
	}
	return nil
}

// Subscribe registers a handler for events matching the given type pattern
func (b *MemoryBus) Subscribe(_ context.Context, eventType string, handler EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = append(b.subscriptions, subscription{pattern: eventType, handler: handler})
	return nil
}
