package delivery

import (
	"time"

	"glassgo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DomainEvent is raised by the Delivery aggregate when its state changes.
// Events are collected on the aggregate and drained by command handlers after
// a successful commit, decoupling state transitions from the alerting and
// messaging side effects that react to them.
type DomainEvent interface {
	// EventID uniquely identifies this event occurrence.
	EventID() uuid.UUID

	// EventName returns the stable event name used in message payloads.
	EventName() string

	// OccurredAt returns when the event was raised.
	OccurredAt() time.Time

	// DeliveryID identifies the delivery the event belongs to.
	DeliveryID() kernel.DeliveryID
}

type baseEvent struct {
	id         uuid.UUID
	name       string
	occurredAt time.Time
	deliveryID kernel.DeliveryID
}

func newBaseEvent(name string, deliveryID kernel.DeliveryID) baseEvent {
	return baseEvent{
		id:         uuid.New(),
		name:       name,
		occurredAt: time.Now(),
		deliveryID: deliveryID,
	}
}

func (e baseEvent) EventID() uuid.UUID            { return e.id }
func (e baseEvent) EventName() string             { return e.name }
func (e baseEvent) OccurredAt() time.Time         { return e.occurredAt }
func (e baseEvent) DeliveryID() kernel.DeliveryID { return e.deliveryID }

// StartedEvent is raised when a delivery is created and starts moving.
type StartedEvent struct {
	baseEvent

	// Status is the status the delivery started in (always InProgress).
	Status Status

	// Location is the initial location, possibly Unknown.
	Location kernel.Location
}

func newStartedEvent(d *Delivery) StartedEvent {
	return StartedEvent{
		baseEvent: newBaseEvent("delivery.started", d.id),
		Status:    d.status,
		Location:  d.location,
	}
}

// StatusChangedEvent is raised when a delivery moves to a new status.
type StatusChangedEvent struct {
	baseEvent

	// From is the status before the transition.
	From Status

	// To is the status after the transition.
	To Status
}

func newStatusChangedEvent(d *Delivery, from Status, to Status) StatusChangedEvent {
	return StatusChangedEvent{
		baseEvent: newBaseEvent("delivery.status_changed", d.id),
		From:      from,
		To:        to,
	}
}

// LocationUpdatedEvent is raised when a delivery reports a new location.
type LocationUpdatedEvent struct {
	baseEvent

	// Status is the delivery status at the time of the update.
	Status Status

	// Location is the newly reported location.
	Location kernel.Location
}

func newLocationUpdatedEvent(d *Delivery) LocationUpdatedEvent {
	return LocationUpdatedEvent{
		baseEvent: newBaseEvent("delivery.location_updated", d.id),
		Status:    d.status,
		Location:  d.location,
	}
}
