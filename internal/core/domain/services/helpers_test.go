package services_test

import (
	"testing"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

func newTemplate(t testing.TB, connection, techSupport int) *ordertype.WorkOrderType {
	t.Helper()
	q, err := ordertype.NewQuotas(map[kernel.TaskType]int{
		kernel.TaskTypeConnection:  connection,
		kernel.TaskTypeTechSupport: techSupport,
	})
	require.NoError(t, err)
	wt, err := ordertype.RestoreWorkOrderType(kernel.NewUUID(), "Сервисные инженеры", q, kernel.AllTaskTypes(), nil)
	require.NoError(t, err)
	return wt
}

func newOrder(
	t testing.TB,
	wt *ordertype.WorkOrderType,
	date string,
	statuses ...workorder.TaskStatus,
) *workorder.WorkOrder {
	t.Helper()
	number, err := workorder.NewNumber(1)
	require.NoError(t, err)
	d, err := kernel.NewDate(date)
	require.NoError(t, err)

	wo, err := workorder.NewWorkOrder(kernel.NewUUID(), number, d, wt.ID())
	require.NoError(t, err)

	for i, st := range statuses {
		tt := kernel.TaskTypeConnection
		if i%2 == 1 {
			tt = kernel.TaskTypeTechSupport
		}
		task, addErr := wo.AddTask(kernel.NewUUID(), workorder.TaskData{Type: tt, Address: "ул. Мира, 5", ClientName: "Сергеев В."})
		require.NoError(t, addErr)
		require.NoError(t, wo.UpdateTaskStatus(task.ID(), st))
	}
	return wo
}

func repeat(status workorder.TaskStatus, n int) []workorder.TaskStatus {
	out := make([]workorder.TaskStatus, n)
	for i := range out {
		out[i] = status
	}
	return out
}
