package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a courier joining an organization so its
// camps become delivery targets for them.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID      kernel.UUID
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command registering a courier with an
// organization.
func NewRegisterCourierCommand(courierID kernel.UUID, organizationID kernel.UUID) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setOrganizationID(organizationID),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the registering courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrganizationID returns the organization being joined.
func (c RegisterCourierCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

func (c *RegisterCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RegisterCourierCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}
