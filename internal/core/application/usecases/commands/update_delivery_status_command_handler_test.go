package commands_test

import (
	"testing"
	"time"

	"glassgo/internal/core/application/usecases/commands"
	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredDelivery(t *testing.T, id string, status delivery.Status) *delivery.Delivery {
	t.Helper()
	deliveryID, err := kernel.DeliveryIDFromString(id)
	require.NoError(t, err)
	d, err := delivery.RestoreDelivery(
		deliveryID, nil, nil, status, kernel.UnknownLocation(), time.Now(), 1)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := restoredDelivery(t, "DEL-10001", delivery.InProgress)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Delayed)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		repo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, delivery.Delayed, updated.Status())

	require.Len(t, publisher.Events(), 1)
	changed, ok := publisher.Events()[0].(delivery.StatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, delivery.InProgress, changed.From)
	assert.Equal(t, delivery.Delayed, changed.To)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id, err := kernel.DeliveryIDFromString("DEL-99999")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, delivery.Delayed)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("delivery", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.Events())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_TerminalIsSilentNoOp(t *testing.T) {
	ctx := t.Context()
	for _, status := range []delivery.Status{delivery.Completed, delivery.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			d := restoredDelivery(t, "DEL-10002", status)
			cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Pending)
			require.NoError(t, err)

			repo := new(MockDeliveryRepository)
			uow := new(MockDeliveryUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("DeliveryRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockDeliveryUoWFactory)
			factory.On("Create").Return(uow).Once()
			publisher := new(RecordingPublisher)

			h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
			unchanged, err := h.Handle(ctx, cmd)
			require.NoError(t, err)

			assert.Equal(t, status, unchanged.Status())
			assert.Empty(t, publisher.Events())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDeliveryStatusCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, new(RecordingPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewUpdateDeliveryStatusCommand_RejectsInvalidStatus(t *testing.T) {
	id, err := kernel.DeliveryIDFromString("DEL-10003")
	require.NoError(t, err)

	_, err = commands.NewUpdateDeliveryStatusCommand(id, delivery.Unknown)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
