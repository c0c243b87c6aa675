package ports

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
)

// EventPublisher delivers domain events to interested subscribers after a
// successful commit. Publication is fire-and-forget: implementations swallow
// and log downstream failures rather than surfacing them, so a broken
// notification channel never fails the state change that triggered it.
type EventPublisher interface {
	Publish(ctx context.Context, events ...delivery.DomainEvent)
}

// EventHandler reacts to a single domain event. Handlers are registered on
// the event bus; a handler error is logged by the bus and never propagated.
type EventHandler interface {
	Handle(ctx context.Context, event delivery.DomainEvent) error
}
