package commands_test

import (
	"context"
	"errors"

	"glassgo/internal/core/application/usecases/commands"
	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*delivery.Delivery); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockDeliveryRepository) GetAllActive(_ context.Context) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	events []delivery.DomainEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, events ...delivery.DomainEvent) {
	p.events = append(p.events, events...)
}

func (p *RecordingPublisher) Events() []delivery.DomainEvent {
	return p.events
}
