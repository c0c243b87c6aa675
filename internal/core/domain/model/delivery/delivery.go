package delivery

import (
	"errors"
	"time"

	"glassgo/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery. This ensures all deliveries
// are properly validated.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructors")

// Delivery represents one shipment tracked through status and location
// changes. It is the aggregate root of the delivery execution subsystem.
//
// Delivery follows these invariants:
//   - The identifier is immutable after creation
//   - UpdatedAt is non-decreasing across mutations on the same instance
//   - A terminal status (completed, delivered) silently ignores further
//     status-change requests
//   - Can only be created through NewDelivery or RestoreDelivery
//
// Carrier and route references are opaque nullable identifiers; the aggregate
// enforces no referential integrity over them. State changes raise domain
// events which callers drain via PullEvents after persisting.
type Delivery struct {
	// id is the immutable shipment identifier
	id kernel.DeliveryID

	// carrierID is an opaque reference to the carrier (nil if none)
	carrierID *string

	// routeID is an opaque reference to the route (nil if none)
	routeID *string

	// status is the current lifecycle state
	status Status

	// location is the last reported location, possibly Unknown
	location kernel.Location

	// updatedAt is the last-mutation time
	updatedAt time.Time

	// version is the optimistic-concurrency token managed by the repository
	version int

	// events holds domain events raised since the last PullEvents
	events []DomainEvent

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a delivery and starts it moving. The status is always
// InProgress regardless of what the caller intended: creating a delivery *is*
// starting it. Raises a StartedEvent.
//
// Parameters:
//   - id: shipment identifier (must be constructed)
//   - carrierID: opaque carrier reference, nil for none
//   - routeID: opaque route reference, nil for none
//   - location: initial location, UnknownLocation() when nothing is reported
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewDeliveryID(), &carrier, &route, kernel.UnknownLocation())
//	if err != nil {
//	    // handle validation error
//	}
func NewDelivery(
	id kernel.DeliveryID,
	carrierID *string,
	routeID *string,
	location kernel.Location,
) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d := &Delivery{
		id:            id,
		carrierID:     carrierID,
		routeID:       routeID,
		status:        InProgress,
		location:      location,
		updatedAt:     time.Now(),
		version:       1,
		isConstructed: true,
	}
	d.raise(newStartedEvent(d))

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
// Unlike NewDelivery it accepts any valid status and raises no events.
func RestoreDelivery(
	id kernel.DeliveryID,
	carrierID *string,
	routeID *string,
	status Status,
	location kernel.Location,
	updatedAt time.Time,
	version int,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		carrierID:     carrierID,
		routeID:       routeID,
		status:        status,
		location:      location,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery was properly constructed.
// Returns ErrDeliveryIsNotConstructed for zero-value or nil instances.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (d *Delivery) ID() kernel.DeliveryID {
	return d.id
}

// CarrierID returns the opaque carrier reference, nil if none.
func (d *Delivery) CarrierID() *string {
	return d.carrierID
}

// RouteID returns the opaque route reference, nil if none.
func (d *Delivery) RouteID() *string {
	return d.routeID
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// Location returns the last reported location.
func (d *Delivery) Location() kernel.Location {
	return d.location
}

// UpdatedAt returns the last-mutation time.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Version returns the optimistic-concurrency token.
func (d *Delivery) Version() int {
	return d.version
}

// IsCompleted reports whether the delivery reached a terminal status.
func (d *Delivery) IsCompleted() bool {
	return d.status.IsTerminal()
}

// ChangeStatus moves the delivery to a new status and raises a
// StatusChangedEvent.
//
// If the delivery is already terminal the request is silently ignored: no
// error, no timestamp refresh, no event. Callers observe the unchanged
// aggregate. An invalid target status is rejected.
func (d *Delivery) ChangeStatus(next Status) error {
	if d.status.IsTerminal() {
		return nil
	}

	from := d.status
	newStatus, err := d.status.ChangeTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	d.raise(newStatusChangedEvent(d, from, newStatus))
	return nil
}

// UpdateLocation sets a new location, refreshes the timestamp and raises a
// LocationUpdatedEvent. Any location variant is accepted, including Unknown;
// whether the location passes verification is a monitoring concern.
func (d *Delivery) UpdateLocation(location kernel.Location) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.location = location
	d.touch()
	d.raise(newLocationUpdatedEvent(d))
	return nil
}

// Complete moves the delivery to Completed.
// Like ChangeStatus, a delivery that is already terminal is left untouched.
func (d *Delivery) Complete() error {
	return d.ChangeStatus(Completed)
}

// PullEvents drains and returns the domain events raised since the last call.
// Handlers call this after a successful commit to publish the events.
func (d *Delivery) PullEvents() []DomainEvent {
	events := d.events
	d.events = nil
	return events
}

// touch refreshes updatedAt, never moving it backwards. A restored aggregate
// may carry a timestamp ahead of the local clock; the invariant is that
// updatedAt is non-decreasing per instance.
func (d *Delivery) touch() {
	if now := time.Now(); now.After(d.updatedAt) {
		d.updatedAt = now
	}
}

func (d *Delivery) raise(event DomainEvent) {
	d.events = append(d.events, event)
}
