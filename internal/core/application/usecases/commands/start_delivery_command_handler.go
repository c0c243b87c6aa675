package commands

import (
	"context"

	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/core/ports"
)

// StartDeliveryCommandHandler handles the business logic for starting a
// delivery. Creates the aggregate in the in_progress status, persists it and
// publishes the raised events after commit (monitoring turns the started
// event into an info alert).
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewStartDeliveryCommandHandler creates a handler for delivery starts.
func NewStartDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start command and returns the created aggregate.
// Generates an identifier when the command does not supply one.
func (h *StartDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd StartDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := cmd.DeliveryID()
	if id == nil {
		generated := kernel.NewDeliveryID()
		id = &generated
	}

	d, err := delivery.NewDelivery(*id, cmd.CarrierID(), cmd.RouteID(), cmd.Location())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, d.PullEvents()...)
	return d, nil
}
