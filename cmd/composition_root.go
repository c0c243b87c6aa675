package cmd

import (
	"log/slog"
	"time"

	deliveryhttp "glassgo/internal/adapters/in/http"
	"glassgo/internal/adapters/out/notify"
	"glassgo/internal/adapters/out/postgres"
	"glassgo/internal/adapters/out/twilio"
	"glassgo/internal/core/application/eventbus"
	"glassgo/internal/core/application/monitoring"
	"glassgo/internal/core/application/usecases/commands"
	"glassgo/internal/core/application/usecases/queries"
	"glassgo/internal/core/ports"
	"glassgo/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and the monitoring pipeline.
// All dependencies flow through here; nothing in the application reaches
// for globals.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	monitor    *monitoring.Service
	bus        *eventbus.Bus
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. extraHandlers lets the caller
// subscribe additional event consumers (the Kafka publisher) without the
// root depending on broker connectivity.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	extraHandlers ...ports.EventHandler,
) CompositionRoot {
	notifier := notify.NewSlogNotifier(logger)
	smsSender := twilio.NewAdapter(twilio.Config{
		AccountSID:   configs.TwilioAccountSID,
		AuthToken:    configs.TwilioAuthToken,
		DefaultPhone: configs.TwilioDefaultPhone,
	}, logger)

	monitor := monitoring.NewService(notifier, smsSender, configs.TwilioDefaultPhone, logger)

	bus := eventbus.NewBus(logger, monitor)
	for _, handler := range extraHandlers {
		bus.Subscribe(handler)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		monitor:    monitor,
		bus:        bus,
		logger:     logger,
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.CreateUpdateDeliveryStatusCommandHandler())
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST boundary over the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *deliveryhttp.Server {
	return deliveryhttp.NewServer(
		c.CreateStartDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateUpdateDeliveryLocationCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateGetAllDeliveriesQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs. The monitoring sweep reads
// through a unit of work's repository outside any transaction.
func (c *CompositionRoot) CreateJobManager(staleAfter time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.uowFactory.Create().DeliveryRepository(),
		c.monitor,
		staleAfter,
		c.logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
