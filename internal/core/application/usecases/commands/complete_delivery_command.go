package commands

import (
	"errors"

	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark a delivery completed.
// Sugar over a status change to completed.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion command.
func NewCompleteDeliveryCommand(deliveryID kernel.DeliveryID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery identifier.
func (c CompleteDeliveryCommand) DeliveryID() kernel.DeliveryID {
	return c.deliveryID
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
