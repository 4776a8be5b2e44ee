package commands_test

import (
	"errors"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	typeID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(orderID, typeID, mustDate(t, "2024-05-01"))
	require.NoError(t, err)

	wt, err := ordertype.NewDefaultWorkOrderType(typeID)
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	typeRepo := new(MockWorkOrderTypeRepository)
	seq := new(MockNumberSequence)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	isExpectedOrder := mock.MatchedBy(func(o *workorder.WorkOrder) bool {
		return o.ID().IsEqual(orderID) &&
			o.TypeID().IsEqual(typeID) &&
			o.Number().String() == "N-0007" &&
			o.Date().String() == "2024-05-01" &&
			o.PerformerID() == nil &&
			o.TaskCount() == 0
	})

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderTypeRepository").Return(typeRepo).Once(),
		typeRepo.On("Get", ctx, typeID).Return(wt, nil).Once(),
		uow.On("NumberSequence").Return(seq).Once(),
		seq.On("Next", ctx, ports.WorkOrderNumberSequence).Return(int64(7), nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, isExpectedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWorkOrderCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	typeRepo.AssertExpectations(t)
	seq.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_TypeNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	typeID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), typeID, mustDate(t, "2024-05-01"))
	require.NoError(t, err)

	typeRepo := new(MockWorkOrderTypeRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderTypeRepository").Return(typeRepo).Once(),
		typeRepo.On("Get", ctx, typeID).Return(nil, errs.NewObjectNotFoundError("work order type", typeID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWorkOrderCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "NumberSequence")
	uow.AssertNotCalled(t, "WorkOrderRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateWorkOrderCommandHandler_Handle_SequenceError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	typeID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), typeID, mustDate(t, "2024-05-01"))
	require.NoError(t, err)

	wt, err := ordertype.NewDefaultWorkOrderType(typeID)
	require.NoError(t, err)

	expectedError := errors.New("sequence unavailable")
	typeRepo := new(MockWorkOrderTypeRepository)
	seq := new(MockNumberSequence)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderTypeRepository").Return(typeRepo).Once(),
		typeRepo.On("Get", ctx, typeID).Return(wt, nil).Once(),
		uow.On("NumberSequence").Return(seq).Once(),
		seq.On("Next", ctx, ports.WorkOrderNumberSequence).Return(int64(0), expectedError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateWorkOrderCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	uow.AssertExpectations(t)
	seq.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), mustDate(t, "2024-05-01"))
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateWorkOrderCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateWorkOrderCommand

	factory := new(MockUoWFactory)
	handler := commands.NewCreateWorkOrderCommandHandler(factory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateWorkOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
