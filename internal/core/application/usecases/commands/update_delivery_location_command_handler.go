package commands

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/ports"
)

// UpdateDeliveryLocationCommandHandler records a delivery's reported
// location. The update always succeeds for an existing delivery; location
// verification happens downstream of the published LocationUpdatedEvent and
// a failed verification only produces a warning alert.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateDeliveryLocationCommandHandler creates a handler for location updates.
func NewUpdateDeliveryLocationCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the location update and returns the updated aggregate.
// A missing delivery fails with an ObjectNotFoundError.
func (h *UpdateDeliveryLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryLocationCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.UpdateLocation(cmd.Location()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, d.PullEvents()...)
	return d, nil
}
