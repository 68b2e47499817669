package courier

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a volunteer who transports donations from suppliers to
// collection camps. It is an aggregate root managing the courier's identity,
// optional geolocation, and the set of organizations the courier has
// registered with.
//
// Business rules:
//   - A courier must have a valid UUID and a non-empty name
//   - Geolocation is optional; couriers without one cannot use route
//     resolution and fall back to manual camp selection
//   - Organization registration is idempotent
//
// Delivery counts and ratings are derived from donation records, never stored
// on the courier.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the courier's display name
	name string
	// location is the courier's last known position, nil when unknown
	location *kernel.GeoPoint
	// organizationIDs are the organizations the courier registered with
	organizationIDs []kernel.UUID
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier with no location and no organization
// registrations. This and RestoreCourier are the only ways to obtain a valid
// Courier.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its location and organization registrations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	organizationIDs []kernel.UUID,
) (*Courier, error) {
	c, err := NewCourier(id, name)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
		point := *location
		c.location = &point
	}

	for _, orgID := range organizationIDs {
		if err = c.RegisterWithOrganization(orgID); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}

	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Location returns the courier's last known position, or nil when unknown.
func (c *Courier) Location() *kernel.GeoPoint {
	return c.location
}

// SetLocation updates the courier's last known position.
func (c *Courier) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	return nil
}

// OrganizationIDs returns the organizations the courier registered with.
// The returned slice is a copy; mutating it does not affect the courier.
func (c *Courier) OrganizationIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.organizationIDs))
	copy(ids, c.organizationIDs)
	return ids
}

// RegisterWithOrganization adds an organization to the courier's registered
// set. Registering twice with the same organization is a no-op.
func (c *Courier) RegisterWithOrganization(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}

	if c.IsRegisteredWith(orgID) {
		return nil
	}

	c.organizationIDs = append(c.organizationIDs, orgID)
	return nil
}

// IsRegisteredWith reports whether the courier registered with the given
// organization.
func (c *Courier) IsRegisteredWith(orgID kernel.UUID) bool {
	for _, id := range c.organizationIDs {
		if id.IsEqual(orgID) {
			return true
		}
	}
	return false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
