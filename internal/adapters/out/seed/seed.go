// Package seed loads reference data (templates and performers) from YAML
// into storage. Loading is idempotent: rows are matched by id.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/ordertype"
	"workorders/internal/core/domain/model/performer"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// File is the YAML document layout.
type File struct {
	WorkOrderTypes []WorkOrderTypeEntry `yaml:"work_order_types"`
	Performers     []PerformerEntry     `yaml:"performers"`
}

type WorkOrderTypeEntry struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Quotas           map[string]int `yaml:"quotas"`
	AllowedTaskTypes []string       `yaml:"allowed_task_types"`
	CreatorRoles     []string       `yaml:"creator_roles"`
}

type PerformerEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
}

// Result counts what a load wrote.
type Result struct {
	TypesCreated int
	TypesUpdated int
	Performers   int
}

// Read parses the file at path, or the built-in seed when path is empty.
func Read(path string) (File, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("reading seed file: %w", err)
		}
		data = raw
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing seed file: %w", err)
	}
	return f, nil
}

// Loader writes a seed file in a single transaction.
type Loader struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewLoader(uowFactory ports.UnitOfWorkFactory) *Loader {
	return &Loader{uowFactory: uowFactory}
}

// Load validates every entry before writing anything, then upserts
// templates and performers.
func (l *Loader) Load(ctx context.Context, f File) (Result, error) {
	types, err := f.workOrderTypes()
	if err != nil {
		return Result{}, err
	}
	performers, err := f.performers()
	if err != nil {
		return Result{}, err
	}

	uow := l.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return Result{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	var result Result
	typeRepo := uow.WorkOrderTypeRepository()
	for _, wt := range types {
		_, getErr := typeRepo.Get(ctx, wt.ID())
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			if err = typeRepo.Add(ctx, wt); err != nil {
				return Result{}, err
			}
			result.TypesCreated++
		case getErr != nil:
			return Result{}, getErr
		default:
			if err = typeRepo.Update(ctx, wt); err != nil {
				return Result{}, err
			}
			result.TypesUpdated++
		}
	}

	performerRepo := uow.PerformerRepository()
	for _, p := range performers {
		if err = performerRepo.Save(ctx, p); err != nil {
			return Result{}, err
		}
		result.Performers++
	}

	if err = uow.Commit(ctx); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (f File) workOrderTypes() ([]*ordertype.WorkOrderType, error) {
	out := make([]*ordertype.WorkOrderType, 0, len(f.WorkOrderTypes))
	for i, e := range f.WorkOrderTypes {
		wt, err := e.toDomain()
		if err != nil {
			return nil, fmt.Errorf("work_order_types[%d]: %w", i, err)
		}
		out = append(out, wt)
	}
	return out, nil
}

func (f File) performers() ([]*performer.Performer, error) {
	out := make([]*performer.Performer, 0, len(f.Performers))
	for i, e := range f.Performers {
		id, err := kernel.UUIDFromString(e.ID)
		if err != nil {
			return nil, fmt.Errorf("performers[%d]: %w", i, err)
		}
		p, err := performer.NewPerformer(id, e.Name, e.Role, e.Avatar)
		if err != nil {
			return nil, fmt.Errorf("performers[%d]: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (e WorkOrderTypeEntry) toDomain() (*ordertype.WorkOrderType, error) {
	id, err := kernel.UUIDFromString(e.ID)
	if err != nil {
		return nil, err
	}

	values := make(map[kernel.TaskType]int, len(e.Quotas))
	for raw, v := range e.Quotas {
		tt, parseErr := kernel.ParseTaskType(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		values[tt] = v
	}
	quotas, err := ordertype.NewQuotas(values)
	if err != nil {
		return nil, err
	}

	allowed := make([]kernel.TaskType, 0, len(e.AllowedTaskTypes))
	for _, raw := range e.AllowedTaskTypes {
		tt, parseErr := kernel.ParseTaskType(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		allowed = append(allowed, tt)
	}

	return ordertype.NewWorkOrderType(id, e.Name, quotas, allowed, e.CreatorRoles)
}
