// Package eventbus fans delivery domain events out to registered handlers.
// The bus runs synchronously in the publishing goroutine and swallows handler
// errors after logging them, keeping event consumption strictly best-effort.
package eventbus

import (
	"context"
	"log/slog"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/ports"
)

// Bus is a synchronous in-process event publisher.
type Bus struct {
	handlers []ports.EventHandler
	logger   *slog.Logger
}

// NewBus creates an event bus with the given subscribers.
// Handlers are invoked in registration order for every published event.
func NewBus(logger *slog.Logger, handlers ...ports.EventHandler) *Bus {
	return &Bus{
		handlers: handlers,
		logger:   logger,
	}
}

// Subscribe registers an additional handler. Not safe for concurrent use
// with Publish; subscribe during composition, before serving traffic.
func (b *Bus) Subscribe(handler ports.EventHandler) {
	b.handlers = append(b.handlers, handler)
}

// Publish delivers each event to every registered handler. Handler errors
// are logged and swallowed so a failing subscriber cannot fail the command
// that produced the event.
func (b *Bus) Publish(ctx context.Context, events ...delivery.DomainEvent) {
	for _, event := range events {
		for _, handler := range b.handlers {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.Error("event handler failed",
					"event", event.EventName(),
					"event_id", event.EventID().String(),
					"delivery_id", event.DeliveryID().String(),
					"error", err)
			}
		}
	}
}
