package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrAcceptDonationCommandIsNotConstructed = errors.New(
	"AcceptDonationCommand must be created via NewAcceptDonationCommand constructor",
)

// AcceptDonationCommand represents a courier's attempt to claim a pending
// donation for pickup.
type AcceptDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDonationCommand creates a command for a courier to claim a
// donation. Both identifiers must be valid UUIDs.
func NewAcceptDonationCommand(donationID kernel.UUID, courierID kernel.UUID) (AcceptDonationCommand, error) {
	command := AcceptDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setCourierID(courierID),
	); err != nil {
		return AcceptDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDonationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDonationCommandIsNotConstructed)
}

// DonationID returns the donation being claimed.
func (c AcceptDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// CourierID returns the claiming courier.
func (c AcceptDonationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *AcceptDonationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
