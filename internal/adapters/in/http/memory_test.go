package http_test

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

// memoryStore is an in-process stand-in for the postgres adapters. It has no
// isolation: writes are visible before commit and rollback undoes nothing.
type memoryStore struct {
	mu         sync.Mutex
	orders     map[kernel.UUID]*workorder.WorkOrder
	types      map[kernel.UUID]*ordertype.WorkOrderType
	performers map[kernel.UUID]*performer.Performer
	sequences  map[string]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:     map[kernel.UUID]*workorder.WorkOrder{},
		types:      map[kernel.UUID]*ordertype.WorkOrderType{},
		performers: map[kernel.UUID]*performer.Performer{},
		sequences:  map[string]int64{},
	}
}

func (s *memoryStore) uow() commands.UoWFactory {
	return uowFactory(func() commands.UoW { return memoryUoW{s: s} })
}

func (s *memoryStore) orderUoW() commands.WorkOrderUoWFactory {
	return orderUoWFactory(func() commands.WorkOrderUoW { return memoryUoW{s: s} })
}

func (s *memoryStore) typeUoW() commands.WorkOrderTypeUoWFactory {
	return typeUoWFactory(func() commands.WorkOrderTypeUoW { return memoryUoW{s: s} })
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type orderUoWFactory func() commands.WorkOrderUoW

func (f orderUoWFactory) Create() commands.WorkOrderUoW { return f() }

type typeUoWFactory func() commands.WorkOrderTypeUoW

func (f typeUoWFactory) Create() commands.WorkOrderTypeUoW { return f() }

type memoryUoW struct{ s *memoryStore }

func (u memoryUoW) Begin(context.Context) error    { return nil }
func (u memoryUoW) Commit(context.Context) error   { return nil }
func (u memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) WorkOrderRepository() ports.WorkOrderRepository         { return orderRepo{u.s} }
func (u memoryUoW) WorkOrderTypeRepository() ports.WorkOrderTypeRepository { return typeRepo{u.s} }
func (u memoryUoW) PerformerRepository() ports.PerformerRepository         { return performerRepo{u.s} }
func (u memoryUoW) NumberSequence() ports.NumberSequence                   { return sequence{u.s} }

type orderRepo struct{ s *memoryStore }

func (r orderRepo) Add(_ context.Context, o *workorder.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID()] = o
	return nil
}

func (r orderRepo) Update(_ context.Context, o *workorder.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("work order", o.ID().String())
	}
	r.s.orders[o.ID()] = o
	return nil
}

func (r orderRepo) Get(_ context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("work order", id.String())
	}
	return o, nil
}

func (r orderRepo) GetAll(context.Context) ([]*workorder.WorkOrder, error) {
	return r.filter(func(*workorder.WorkOrder) bool { return true }), nil
}

func (r orderRepo) GetByDate(_ context.Context, date kernel.Date) ([]*workorder.WorkOrder, error) {
	return r.filter(func(o *workorder.WorkOrder) bool { return o.Date().IsEqual(date) }), nil
}

func (r orderRepo) filter(keep func(*workorder.WorkOrder) bool) []*workorder.WorkOrder {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*workorder.WorkOrder, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *workorder.WorkOrder) int {
		return cmp.Compare(a.Number().Seq(), b.Number().Seq())
	})
	return out
}

type typeRepo struct{ s *memoryStore }

func (r typeRepo) Add(_ context.Context, wt *ordertype.WorkOrderType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.types[wt.ID()] = wt
	return nil
}

func (r typeRepo) Update(_ context.Context, wt *ordertype.WorkOrderType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.types[wt.ID()]; !ok {
		return errs.NewObjectNotFoundError("work order type", wt.ID().String())
	}
	r.s.types[wt.ID()] = wt
	return nil
}

func (r typeRepo) Get(_ context.Context, id kernel.UUID) (*ordertype.WorkOrderType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wt, ok := r.s.types[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("work order type", id.String())
	}
	return wt, nil
}

func (r typeRepo) GetAll(context.Context) ([]*ordertype.WorkOrderType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*ordertype.WorkOrderType, 0, len(r.s.types))
	for _, wt := range r.s.types {
		out = append(out, wt)
	}
	slices.SortFunc(out, func(a, b *ordertype.WorkOrderType) int { return cmp.Compare(a.Name(), b.Name()) })
	return out, nil
}

func (r typeRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.types[id]; !ok {
		return errs.NewObjectNotFoundError("work order type", id.String())
	}
	delete(r.s.types, id)
	return nil
}

type performerRepo struct{ s *memoryStore }

func (r performerRepo) Get(_ context.Context, id kernel.UUID) (*performer.Performer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.performers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("performer", id.String())
	}
	return p, nil
}

func (r performerRepo) GetAll(context.Context) ([]*performer.Performer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*performer.Performer, 0, len(r.s.performers))
	for _, p := range r.s.performers {
		out = append(out, p)
	}
	return out, nil
}

func (r performerRepo) Save(_ context.Context, p *performer.Performer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.performers[p.ID()] = p
	return nil
}

type sequence struct{ s *memoryStore }

func (q sequence) Next(_ context.Context, name string) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	q.s.sequences[name]++
	return q.s.sequences[name], nil
}
