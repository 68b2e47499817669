package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrDeliverDonationsCommandIsNotConstructed = errors.New(
	"DeliverDonationsCommand must be created via NewDeliverDonationsCommand constructor",
)

// DeliverDonationsCommand represents a courier dropping their whole active
// load at one collection camp.
type DeliverDonationsCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	campID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverDonationsCommand creates a command delivering all of the
// courier's active donations to the given camp.
func NewDeliverDonationsCommand(courierID kernel.UUID, campID kernel.UUID) (DeliverDonationsCommand, error) {
	command := DeliverDonationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setCampID(campID),
	); err != nil {
		return DeliverDonationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverDonationsCommand) Validate() error {
	return c.guard.Validate(ErrDeliverDonationsCommandIsNotConstructed)
}

// CourierID returns the delivering courier.
func (c DeliverDonationsCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CampID returns the destination camp.
func (c DeliverDonationsCommand) CampID() kernel.UUID {
	return c.campID
}

func (c *DeliverDonationsCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *DeliverDonationsCommand) setCampID(campID kernel.UUID) error {
	if err := campID.Validate(); err != nil {
		return err
	}

	c.campID = campID
	return nil
}
