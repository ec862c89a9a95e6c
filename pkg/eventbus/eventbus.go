// Package eventbus provides a synchronous in-process event dispatcher.
// Handlers run on the publishing goroutine, in registration order, and
// Publish returns only after every handler has run. There is no retry
// and no persistence of events.
package eventbus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"go-shop/pkg/logger"
)

// Event is anything that can be dispatched by name
type Event interface {
	EventName() string
}

// Handler handles a single event
type Handler func(ctx context.Context, event Event) error

// Bus dispatches events to subscribed handlers
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// New creates a new event bus
func New(log *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for an event name
func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

// Publish dispatches the event to all handlers registered for its name.
// A failing handler is logged and does not stop the remaining handlers.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			b.log.WithContext(ctx).Error("event handler failed",
				zap.Error(err),
				zap.String("event", event.EventName()),
			)
		}
	}

	return nil
}
