package queries_test

import (
	"context"
	"strconv"
	"testing"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	orders []*workorder.WorkOrder
	err    error
}

func (f *fakeOrders) Get(_ context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	for _, o := range f.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("work order", id.String())
}

func (f *fakeOrders) GetAll(_ context.Context) ([]*workorder.WorkOrder, error) {
	return f.orders, f.err
}

func (f *fakeOrders) GetByDate(_ context.Context, date kernel.Date) ([]*workorder.WorkOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*workorder.WorkOrder, 0)
	for _, o := range f.orders {
		if o.Date().IsEqual(date) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeTypes struct {
	types []*ordertype.WorkOrderType
}

func (f *fakeTypes) Get(_ context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error) {
	for _, t := range f.types {
		if t.ID().IsEqual(id) {
			return t, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("work order type", id.String())
}

func (f *fakeTypes) GetAll(_ context.Context) ([]*ordertype.WorkOrderType, error) {
	return f.types, nil
}

type fakePerformers struct {
	performers []*performer.Performer
}

func (f *fakePerformers) Get(_ context.Context, id kernel.UUID) (*performer.Performer, error) {
	for _, p := range f.performers {
		if p.ID().IsEqual(id) {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("performer", id.String())
}

func (f *fakePerformers) GetAll(_ context.Context) ([]*performer.Performer, error) {
	return f.performers, nil
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(s)
	require.NoError(t, err)
	return d
}

func newType(t *testing.T, name string, connection, techSupport int) *ordertype.WorkOrderType {
	t.Helper()
	quotas, err := ordertype.NewQuotas(map[kernel.TaskType]int{
		kernel.TaskTypeConnection:  connection,
		kernel.TaskTypeTechSupport: techSupport,
	})
	require.NoError(t, err)
	wt, err := ordertype.RestoreWorkOrderType(kernel.NewUUID(), name, quotas, kernel.AllTaskTypes(), []string{"Бригадир"})
	require.NoError(t, err)
	return wt
}

// newOrder creates an order with one CONNECTION task per status.
func newOrder(
	t *testing.T,
	seq int64,
	date string,
	typeID kernel.UUID,
	statuses ...workorder.TaskStatus,
) *workorder.WorkOrder {
	t.Helper()
	number, err := workorder.NewNumber(seq)
	require.NoError(t, err)
	order, err := workorder.NewWorkOrder(kernel.NewUUID(), number, mustDate(t, date), typeID)
	require.NoError(t, err)

	for i, st := range statuses {
		task, addErr := order.AddTask(kernel.NewUUID(), workorder.TaskData{
			Type:       kernel.TaskTypeConnection,
			Address:    "ул. Садовая, " + strconv.Itoa(i+1),
			ClientName: "Клиент",
		})
		require.NoError(t, addErr)
		require.NoError(t, order.UpdateTaskStatus(task.ID(), st))
	}
	return order
}

func repeat(status workorder.TaskStatus, n int) []workorder.TaskStatus {
	out := make([]workorder.TaskStatus, n)
	for i := range out {
		out[i] = status
	}
	return out
}
