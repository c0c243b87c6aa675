package commands

import (
	"errors"

	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand represents a request to record a delivery's
// current location. Any location variant is accepted, including Unknown;
// whether the location verifies is advisory and handled by monitoring.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID
	location   kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryLocationCommand creates a location-update command.
func NewUpdateDeliveryLocationCommand(
	deliveryID kernel.DeliveryID,
	location kernel.Location,
) (UpdateDeliveryLocationCommand, error) {
	cmd := UpdateDeliveryLocationCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

// DeliveryID returns the target delivery identifier.
func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.DeliveryID {
	return c.deliveryID
}

// Location returns the reported location.
func (c UpdateDeliveryLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateDeliveryLocationCommand) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
