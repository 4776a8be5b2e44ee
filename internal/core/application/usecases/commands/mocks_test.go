package commands_test

import (
	"context"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*workorder.WorkOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetByDate(ctx context.Context, date kernel.Date) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

type MockWorkOrderTypeRepository struct{ mock.Mock }

func (m *MockWorkOrderTypeRepository) Add(ctx context.Context, wt *ordertype.WorkOrderType) error {
	args := m.Called(ctx, wt)
	return args.Error(0)
}

func (m *MockWorkOrderTypeRepository) Update(ctx context.Context, wt *ordertype.WorkOrderType) error {
	args := m.Called(ctx, wt)
	return args.Error(0)
}

func (m *MockWorkOrderTypeRepository) Get(ctx context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*ordertype.WorkOrderType), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderTypeRepository) GetAll(ctx context.Context) ([]*ordertype.WorkOrderType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*ordertype.WorkOrderType), args.Error(1)
}

func (m *MockWorkOrderTypeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPerformerRepository struct{ mock.Mock }

func (m *MockPerformerRepository) Get(ctx context.Context, id kernel.UUID) (*performer.Performer, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*performer.Performer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPerformerRepository) GetAll(ctx context.Context) ([]*performer.Performer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*performer.Performer), args.Error(1)
}

func (m *MockPerformerRepository) Save(ctx context.Context, p *performer.Performer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockNumberSequence struct{ mock.Mock }

func (m *MockNumberSequence) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) WorkOrderTypeRepository() ports.WorkOrderTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderTypeRepository)
}

func (m *MockUoW) PerformerRepository() ports.PerformerRepository {
	args := m.Called()
	return args.Get(0).(ports.PerformerRepository)
}

func (m *MockUoW) NumberSequence() ports.NumberSequence {
	args := m.Called()
	return args.Get(0).(ports.NumberSequence)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockWorkOrderTypeUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderTypeUoWFactory) Create() commands.WorkOrderTypeUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderTypeUoW)
}
