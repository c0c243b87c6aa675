package commands

import (
	"errors"

	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to start tracking a new delivery
// shipment. The delivery ID is optional: when absent, the handler generates
// one. Carrier and route are opaque nullable references. Whatever status a
// caller might have wished for is irrelevant - started deliveries are always
// in_progress.
//
// Example:
//
//	carrier, route := "C1", "R1"
//	cmd, err := NewStartDeliveryCommand(nil, &carrier, &route, kernel.UnknownLocation())
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID *kernel.DeliveryID
	carrierID  *string
	routeID    *string
	location   kernel.Location

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start a delivery.
// A supplied delivery ID must be properly constructed; nil means "generate".
func NewStartDeliveryCommand(
	deliveryID *kernel.DeliveryID,
	carrierID *string,
	routeID *string,
	location kernel.Location,
) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		carrierID: carrierID,
		routeID:   routeID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the caller-supplied identifier, nil when one should be
// generated.
func (c StartDeliveryCommand) DeliveryID() *kernel.DeliveryID {
	return c.deliveryID
}

// CarrierID returns the opaque carrier reference, nil if none.
func (c StartDeliveryCommand) CarrierID() *string {
	return c.carrierID
}

// RouteID returns the opaque route reference, nil if none.
func (c StartDeliveryCommand) RouteID() *string {
	return c.routeID
}

// Location returns the initial location, possibly Unknown.
func (c StartDeliveryCommand) Location() kernel.Location {
	return c.location
}

func (c *StartDeliveryCommand) setDeliveryID(deliveryID *kernel.DeliveryID) error {
	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return err
		}
	}

	c.deliveryID = deliveryID
	return nil
}
