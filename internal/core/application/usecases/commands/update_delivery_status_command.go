package commands

import (
	"errors"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a delivery to a
// new lifecycle status.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status-change command.
// Both the identifier and the target status must be valid; an unrecognized
// status never reaches a handler.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.DeliveryID,
	status delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.DeliveryID {
	return c.deliveryID
}

// Status returns the requested target status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
