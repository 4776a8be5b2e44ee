package commands_test

import (
	"errors"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTaskCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := newWorkOrder(t, 1)
	_, err := order.AddTask(kernel.NewUUID(), connectionTask())
	require.NoError(t, err)

	taskID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskCommand(
		order.ID(), taskID, kernel.TaskTypeTechSupport, "ул. Гагарина, 3", "Сидоров", "",
	)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	factory := new(MockWorkOrderUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		repo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddTaskCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)

	tasks := order.Tasks()
	require.Len(t, tasks, 2)
	added := tasks[1]
	assert.True(t, added.ID().IsEqual(taskID))
	assert.Equal(t, workorder.StatusNew, added.Status())
	assert.Equal(t, kernel.TaskTypeTechSupport, added.Type())
	assert.Equal(t, "Сидоров", added.ClientName())
}

func TestAddTaskCommandHandler_Handle_OrderNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskCommand(orderID, kernel.NewUUID(), kernel.TaskTypeConnection, "a", "c", "")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	factory := new(MockWorkOrderUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("work order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddTaskCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddTaskCommandHandler_Handle_DuplicateTaskID(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := newWorkOrder(t, 1)
	taskID := kernel.NewUUID()
	_, err := order.AddTask(taskID, connectionTask())
	require.NoError(t, err)

	cmd, err := commands.NewAddTaskCommand(order.ID(), taskID, kernel.TaskTypeConnection, "a", "c", "")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	factory := new(MockWorkOrderUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddTaskCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 1, order.TaskCount())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddTaskCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := newWorkOrder(t, 1)
	cmd, err := commands.NewAddTaskCommand(order.ID(), kernel.NewUUID(), kernel.TaskTypeConnection, "a", "c", "")
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	factory := new(MockWorkOrderUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		repo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(expectedError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddTaskCommandHandler(factory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	uow.AssertExpectations(t)
}
