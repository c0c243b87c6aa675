package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "glassgo/internal/adapters/out/postgres"
	"glassgo/internal/adapters/out/postgres/deliveryrepo"
	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DeliveryRepository(), "First instance should provide delivery repository")
	suite.NotNil(uow2.DeliveryRepository(), "Second instance should provide delivery repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommittedChangesPersist verifies repository operations
// within a transaction boundary become visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedChangesPersist() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDelivery := suite.createTestDelivery("DEL-50001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDelivery.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible from a fresh unit of work after commit
	newUow := suite.factory.Create()
	retrieved, err = newUow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testDelivery.ID()))
}

// TestUnitOfWork_RolledBackChangesAreDiscarded verifies rollback discards
// all repository operations made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RolledBackChangesAreDiscarded() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDelivery := suite.createTestDelivery("DEL-50002")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().Error(err, "Delivery should not exist after rollback")
}

// TestUnitOfWork_StatusChangeWithinTransaction verifies an update flows
// through the same transaction as the read that produced the aggregate.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusChangeWithinTransaction() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	testDelivery := suite.createTestDelivery("DEL-50003")
	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(setupUow.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.ChangeStatus(delivery.Delayed))
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	final, err := verifyUow.DeliveryRepository().Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delayed, final.Status())
	suite.Equal(2, final.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDelivery(id string) *delivery.Delivery {
	deliveryID, err := kernel.DeliveryIDFromString(id)
	suite.Require().NoError(err)

	d, err := delivery.RestoreDelivery(
		deliveryID,
		nil,
		nil,
		delivery.InProgress,
		kernel.NewTextLocation("Zone A"),
		time.Now().UTC().Truncate(time.Microsecond),
		1,
	)
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
