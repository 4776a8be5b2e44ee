package postgres_test

import (
	"context"
	"sync"
	"testing"

	postgres_adapter "workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/pgtest"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and migrates the schema once for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(database.DB))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.database.Truncate("tasks", "work_orders", "work_order_types", "performers", "sequences")
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

// TestUnitOfWorkFactory_Create verifies the factory hands out independent
// units of work with all repositories available.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	for _, uow := range []ports.UnitOfWork{uow1, uow2} {
		suite.NotNil(uow.WorkOrderRepository())
		suite.NotNil(uow.WorkOrderTypeRepository())
		suite.NotNil(uow.PerformerRepository())
		suite.NotNil(uow.NumberSequence())
	}
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

// TestUnitOfWork_CreateWorkOrderFlow runs the numbering and insert of an
// order in one transaction and reads it back through a fresh unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CreateWorkOrderFlow() {
	ctx := context.Background()
	wt := suite.seedType()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	seq, err := uow.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	order := suite.newOrder(seq, wt.ID())
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal("N-0001", loaded.Number().String())
}

// TestUnitOfWork_TrackedAggregates verifies the unit of work records every
// write in order and forgets them on rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TrackedAggregates() {
	ctx := context.Background()
	wt := suite.seedType()

	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Begin(ctx))

	order := suite.newOrder(1, wt.ID())
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))
	suite.Require().NoError(order.AssignPerformer(kernel.NewUUID()))
	suite.Require().NoError(uow.WorkOrderRepository().Update(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Equal(order.ID(), tracked[0].ID)
	suite.Same(order, tracked[1].Aggregate)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Empty(uow.TrackedAggregates(), "Begin should start a fresh record")

	suite.Require().NoError(uow.WorkOrderRepository().Update(ctx, order))
	suite.Len(uow.TrackedAggregates(), 1)
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.TrackedAggregates())
}

// TestUnitOfWork_TransactionRollback verifies that nothing written inside a
// rolled back transaction is visible, the sequence increment included.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	wt := suite.seedType()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	seq, err := uow.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
	suite.Require().NoError(err)
	order := suite.newOrder(seq, wt.ID())
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	next := suite.factory.Create()
	suite.Require().NoError(next.Begin(ctx))
	seq, err = next.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
	suite.Require().NoError(err)
	suite.Require().NoError(next.Commit(ctx))
	suite.Equal(int64(1), seq, "Rolled back number should be reused")
}

// TestUnitOfWork_AssignPerformerAcrossRepositories reads from three
// repositories and writes one inside the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignPerformerAcrossRepositories() {
	ctx := context.Background()
	wt := suite.seedType()
	p, err := performer.NewPerformer(kernel.NewUUID(), "Иван Иванов", "Сервисный инженер", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().PerformerRepository().Save(ctx, p))
	order := suite.newOrder(1, wt.ID())
	suite.Require().NoError(suite.factory.Create().WorkOrderRepository().Add(ctx, order))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loaded, err := uow.WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	found, err := uow.PerformerRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignPerformer(found.ID()))
	suite.Require().NoError(uow.WorkOrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	reloaded, err := suite.factory.Create().WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.PerformerID())
	suite.True(reloaded.PerformerID().IsEqual(p.ID()))
}

// TestUnitOfWork_ConcurrentNumbering verifies parallel creators never
// receive the same number.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentNumbering() {
	ctx := context.Background()
	const workers = 8

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool, workers)
		errc = make(chan error, workers)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				errc <- err
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			seq, err := uow.NumberSequence().Next(ctx, ports.WorkOrderNumberSequence)
			if err != nil {
				errc <- err
				return
			}
			if err = uow.Commit(ctx); err != nil {
				errc <- err
				return
			}
			mu.Lock()
			seen[seq] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(errc)

	for err := range errc {
		suite.Require().NoError(err)
	}
	suite.Len(seen, workers)
	for i := int64(1); i <= workers; i++ {
		suite.True(seen[i], "number %d was not issued", i)
	}
}

// TestUnitOfWork_WithoutTransaction verifies repositories work on the plain
// connection when Begin is never called.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	wt := suite.seedType()

	all, err := uow.WorkOrderTypeRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.True(all[0].IsEqual(wt))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedType() *ordertype.WorkOrderType {
	wt, err := ordertype.NewDefaultWorkOrderType(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().WorkOrderTypeRepository().Add(context.Background(), wt))
	return wt
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(seq int64, typeID kernel.UUID) *workorder.WorkOrder {
	number, err := workorder.NewNumber(seq)
	suite.Require().NoError(err)
	date, err := kernel.NewDate("2024-05-01")
	suite.Require().NoError(err)
	order, err := workorder.NewWorkOrder(kernel.NewUUID(), number, date, typeID)
	suite.Require().NoError(err)
	return order
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
