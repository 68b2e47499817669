package camp

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a camp without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCampIsNotConstructed is returned when using an improperly initialized Camp.
	ErrCampIsNotConstructed = errors.New("Camp must be created via NewCamp constructor")
	// ErrCampAlreadyCompleted is returned when completing a camp that is no longer active.
	ErrCampAlreadyCompleted = errors.New("camp drive has already been completed")
)

// Camp represents a collection drive run by an organization. Couriers drop
// donations at camps, and the organization's operators verify deliveries
// there.
//
// Business rules:
//   - A camp belongs to exactly one organization for its whole lifetime
//   - Geolocation is optional; camps without coordinates are skipped by
//     route resolution but remain selectable manually
//   - Completing a camp deactivates it permanently; completed camps accept
//     no new deliveries but already-delivered donations keep their record
type Camp struct {
	// id uniquely identifies the camp
	id kernel.UUID
	// organizationID is the organization running the camp
	organizationID kernel.UUID
	// name is the camp's display name
	name string
	// location is the camp's position, nil when not geocoded
	location *kernel.GeoPoint
	// isActive reports whether the camp accepts deliveries
	isActive bool
	// startTime is when the drive opened
	startTime time.Time
	// completedAt is when the drive was closed, nil while active
	completedAt *time.Time
	// guard ensures the camp was properly constructed
	guard guard.ConstructorGuard
}

// NewCamp creates an active camp with no location. This and RestoreCamp are
// the only ways to obtain a valid Camp.
func NewCamp(id kernel.UUID, organizationID kernel.UUID, name string, startTime time.Time) (*Camp, error) {
	c := &Camp{
		isActive:  true,
		startTime: startTime,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrganizationID(organizationID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCamp reconstructs a Camp aggregate from persistent storage.
func RestoreCamp(
	id kernel.UUID,
	organizationID kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	isActive bool,
	startTime time.Time,
	completedAt *time.Time,
) (*Camp, error) {
	c, err := NewCamp(id, organizationID, name, startTime)
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

	if isActive && completedAt != nil {
		return nil, errs.NewValueIsInvalidError("completedAt must be empty while the camp is active")
	}
	if !isActive && completedAt == nil {
		return nil, errs.NewValueIsRequiredError("completedAt")
	}

	c.isActive = isActive
	if completedAt != nil {
		at := *completedAt
		c.completedAt = &at
	}

	return c, nil
}

// Validate ensures the Camp instance was properly constructed.
func (c *Camp) Validate() error {
	if c == nil {
		return ErrCampIsNotConstructed
	}

	return c.guard.Validate(ErrCampIsNotConstructed)
}

// IsEqual compares two camps by their unique identifiers.
func (c *Camp) IsEqual(other *Camp) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the camp's unique identifier.
func (c *Camp) ID() kernel.UUID {
	return c.id
}

// OrganizationID returns the organization running the camp.
func (c *Camp) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the camp's display name.
func (c *Camp) Name() string {
	return c.name
}

// Location returns the camp's position, or nil when not geocoded.
func (c *Camp) Location() *kernel.GeoPoint {
	return c.location
}

// HasLocation reports whether the camp has coordinates.
func (c *Camp) HasLocation() bool {
	return c.location != nil
}

// SetLocation updates the camp's position.
func (c *Camp) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	return nil
}

// IsActive reports whether the camp accepts deliveries.
func (c *Camp) IsActive() bool {
	return c.isActive
}

// StartTime returns when the drive opened.
func (c *Camp) StartTime() time.Time {
	return c.startTime
}

// CompletedAt returns when the drive was closed, or nil while active.
func (c *Camp) CompletedAt() *time.Time {
	return c.completedAt
}

// Complete closes the drive. The camp stops accepting deliveries and cannot
// be reopened.
func (c *Camp) Complete(now time.Time) error {
	if !c.isActive {
		return ErrCampAlreadyCompleted
	}

	c.isActive = false
	c.completedAt = &now
	return nil
}

func (c *Camp) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Camp) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	c.organizationID = organizationID
	return nil
}

func (c *Camp) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
