package ordertype

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

const (
	DefaultName             = "Новый шаблон"
	DefaultCreatorRole      = "Бригадир"
	defaultConnectionQuota  = 5
	defaultTechSupportQuota = 5
)

var (
	ErrNameIsRequired                = errs.NewValueIsRequiredError("name")
	ErrTotalQuotaIsZero              = errs.NewValueIsInvalidErrorWithCause("quotas", errors.New("total quota must be at least 1"))
	ErrWorkOrderTypeIsNotConstructed = errors.New("WorkOrderType must be created via NewWorkOrderType constructor")
)

// WorkOrderType is the template a work order is instantiated from. It owns
// the quotas that measure completion of every order referencing it.
//
// Invariants:
//   - quotas carry one entry per task type
//   - a template created or edited through this type never has total quota 0
//   - allowed task types and creator roles contain no duplicates
type WorkOrderType struct {
	id               kernel.UUID
	name             string
	quotas           Quotas
	allowedTaskTypes []kernel.TaskType
	creatorRoles     []string
	guard            guard.ConstructorGuard
}

func NewWorkOrderType(
	id kernel.UUID,
	name string,
	quotas Quotas,
	allowedTaskTypes []kernel.TaskType,
	creatorRoles []string,
) (*WorkOrderType, error) {
	t := &WorkOrderType{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setQuotas(quotas),
		t.setAllowedTaskTypes(allowedTaskTypes),
		t.setCreatorRoles(creatorRoles),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// NewDefaultWorkOrderType builds a template with the administration defaults:
// 5 connections, 5 tech-support visits, both types allowed, foreman may create.
func NewDefaultWorkOrderType(id kernel.UUID) (*WorkOrderType, error) {
	return NewWorkOrderType(id, DefaultName, DefaultQuotas(), kernel.AllTaskTypes(), []string{DefaultCreatorRole})
}

// DefaultQuotas returns the quotas a new template starts with.
func DefaultQuotas() Quotas {
	return Quotas{values: map[kernel.TaskType]int{
		kernel.TaskTypeConnection:  defaultConnectionQuota,
		kernel.TaskTypeTechSupport: defaultTechSupportQuota,
	}}
}

// RestoreWorkOrderType rebuilds a persisted template. A zero total quota is
// accepted here since rows written before the rule existed must stay readable.
func RestoreWorkOrderType(
	id kernel.UUID,
	name string,
	quotas Quotas,
	allowedTaskTypes []kernel.TaskType,
	creatorRoles []string,
) (*WorkOrderType, error) {
	t := &WorkOrderType{
		guard:  guard.NewConstructorGuard(),
		quotas: quotas,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setAllowedTaskTypes(allowedTaskTypes),
		t.setCreatorRoles(creatorRoles),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *WorkOrderType) Validate() error {
	if t == nil {
		return ErrWorkOrderTypeIsNotConstructed
	}
	return t.guard.Validate(ErrWorkOrderTypeIsNotConstructed)
}

func (t *WorkOrderType) IsEqual(other *WorkOrderType) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *WorkOrderType) ID() kernel.UUID {
	return t.id
}

func (t *WorkOrderType) Name() string {
	return t.name
}

func (t *WorkOrderType) Quotas() Quotas {
	return t.quotas
}

// TotalQuota is the sum of quotas over every task type.
func (t *WorkOrderType) TotalQuota() int {
	return t.quotas.Total()
}

func (t *WorkOrderType) AllowedTaskTypes() []kernel.TaskType {
	return slices.Clone(t.allowedTaskTypes)
}

func (t *WorkOrderType) CreatorRoles() []string {
	return slices.Clone(t.creatorRoles)
}

// AllowsTaskType is informational: adding a disallowed task to an order is not rejected.
func (t *WorkOrderType) AllowsTaskType(tt kernel.TaskType) bool {
	return slices.Contains(t.allowedTaskTypes, tt)
}

func (t *WorkOrderType) CanBeCreatedBy(role string) bool {
	return slices.Contains(t.creatorRoles, role)
}

func (t *WorkOrderType) Rename(name string) error {
	return t.setName(name)
}

// ChangeQuotas replaces the quotas. Existing work orders see the new
// denominator immediately since they reference the template by id.
func (t *WorkOrderType) ChangeQuotas(quotas Quotas) error {
	return t.setQuotas(quotas)
}

func (t *WorkOrderType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *WorkOrderType) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *WorkOrderType) setQuotas(quotas Quotas) error {
	if quotas.Total() == 0 {
		return ErrTotalQuotaIsZero
	}
	t.quotas = quotas
	return nil
}

func (t *WorkOrderType) setAllowedTaskTypes(types []kernel.TaskType) error {
	allowed := make([]kernel.TaskType, 0, len(types))
	for _, tt := range types {
		if err := tt.Validate(); err != nil {
			return err
		}
		if !slices.Contains(allowed, tt) {
			allowed = append(allowed, tt)
		}
	}
	t.allowedTaskTypes = allowed
	return nil
}

func (t *WorkOrderType) setCreatorRoles(roles []string) error {
	unique := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" {
			return errs.NewValueIsRequiredErrorWithCause("creator role", fmt.Errorf("blank role in %q", roles))
		}
		if !slices.Contains(unique, r) {
			unique = append(unique, r)
		}
	}
	t.creatorRoles = unique
	return nil
}
