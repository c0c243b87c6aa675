package commands

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
)

// CompleteDeliveryCommandHandler marks a delivery completed by delegating to
// the status-change handler with the completed status. A delivery that is
// already terminal comes back unchanged, same as any other terminal request.
type CompleteDeliveryCommandHandler struct {
	statusHandler UpdateDeliveryStatusCommandHandler
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	statusHandler UpdateDeliveryStatusCommandHandler,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		statusHandler: statusHandler,
	}
}

// Handle completes the delivery and returns the aggregate.
func (h *CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	statusCmd, err := NewUpdateDeliveryStatusCommand(cmd.DeliveryID(), delivery.Completed)
	if err != nil {
		return nil, err
	}

	return h.statusHandler.Handle(ctx, statusCmd)
}
