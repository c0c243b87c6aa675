package commands

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler moves a delivery through its lifecycle.
//
// A delivery that has already reached a terminal status is returned unchanged
// with no persistence write and no events - terminal requests are a silent
// no-op, not an error. Disruptive target statuses (delayed, incident) end up
// as critical alerts downstream of the published StatusChangedEvent.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status changes.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change and returns the (possibly unchanged)
// aggregate. A missing delivery fails with an ObjectNotFoundError.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
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

	if d.IsCompleted() {
		return d, nil
	}

	if err = d.ChangeStatus(cmd.Status()); err != nil {
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
