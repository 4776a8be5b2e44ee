// Package performer provides the Performer entity: a field worker who can be
// assigned to work orders. Performers are reference data; the domain never
// creates or edits them, they are loaded from seed data.
package performer

import (
	"errors"
	"net/url"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var (
	ErrNameIsRequired            = errs.NewValueIsRequiredError("name")
	ErrRoleIsRequired            = errs.NewValueIsRequiredError("role")
	ErrPerformerIsNotConstructed = errors.New("Performer must be created via NewPerformer constructor")
)

type Performer struct {
	id     kernel.UUID
	name   string
	role   string
	avatar string
	guard  guard.ConstructorGuard
}

// NewPerformer builds a performer. avatar is optional and, when set, must be
// an absolute URL.
func NewPerformer(id kernel.UUID, name, role, avatar string) (*Performer, error) {
	p := &Performer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setRole(role),
		p.setAvatar(avatar),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Performer) Validate() error {
	if p == nil {
		return ErrPerformerIsNotConstructed
	}
	return p.guard.Validate(ErrPerformerIsNotConstructed)
}

func (p *Performer) ID() kernel.UUID {
	return p.id
}

func (p *Performer) Name() string {
	return p.name
}

// Role is a display label only.
func (p *Performer) Role() string {
	return p.role
}

// Avatar returns "" when the performer has none.
func (p *Performer) Avatar() string {
	return p.avatar
}

func (p *Performer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Performer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Performer) setRole(role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrRoleIsRequired
	}
	p.role = role
	return nil
}

func (p *Performer) setAvatar(avatar string) error {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		p.avatar = ""
		return nil
	}
	u, err := url.Parse(avatar)
	if err != nil || !u.IsAbs() {
		return errs.NewValueIsInvalidErrorWithCause("avatar", errors.New("must be an absolute URL"))
	}
	p.avatar = avatar
	return nil
}
