package commands_test

import (
	"testing"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(s)
	require.NoError(t, err)
	return d
}

func newWorkOrder(t *testing.T, seq int64) *workorder.WorkOrder {
	t.Helper()
	number, err := workorder.NewNumber(seq)
	require.NoError(t, err)
	order, err := workorder.NewWorkOrder(kernel.NewUUID(), number, mustDate(t, "2024-05-01"), kernel.NewUUID())
	require.NoError(t, err)
	return order
}

func connectionTask() workorder.TaskData {
	return workorder.TaskData{
		Type:       kernel.TaskTypeConnection,
		Address:    "ул. Ленина, 1",
		ClientName: "Иванов",
	}
}
