package organization

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create an organization without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrOrganizationIsNotConstructed is returned when using an improperly initialized Organization.
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")
)

// Organization represents an NGO running collection camps. Each organization
// has a single operator account that may complete its camps and confirm
// deliveries made to them.
type Organization struct {
	id         kernel.UUID
	name       string
	operatorID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewOrganization creates an organization managed by the given operator.
func NewOrganization(id kernel.UUID, name string, operatorID kernel.UUID) (*Organization, error) {
	o := &Organization{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setOperatorID(operatorID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Organization instance was properly constructed.
func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}

	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

// IsEqual compares two organizations by their unique identifiers.
func (o *Organization) IsEqual(other *Organization) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// Name returns the organization's display name.
func (o *Organization) Name() string {
	return o.name
}

// OperatorID returns the account that manages the organization.
func (o *Organization) OperatorID() kernel.UUID {
	return o.operatorID
}

// ManagedBy reports whether the given operator manages the organization.
func (o *Organization) ManagedBy(operatorID kernel.UUID) bool {
	return o.operatorID.IsEqual(operatorID)
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Organization) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	o.operatorID = operatorID
	return nil
}
