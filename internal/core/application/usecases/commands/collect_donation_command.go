package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCollectDonationCommandIsNotConstructed = errors.New(
	"CollectDonationCommand must be created via NewCollectDonationCommand constructor",
)

// CollectDonationCommand represents the assigned courier reporting physical
// pickup of the food from the supplier.
type CollectDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCollectDonationCommand creates a command marking a donation as
// collected. Both identifiers must be valid UUIDs.
func NewCollectDonationCommand(donationID kernel.UUID, courierID kernel.UUID) (CollectDonationCommand, error) {
	command := CollectDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setCourierID(courierID),
	); err != nil {
		return CollectDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectDonationCommand) Validate() error {
	return c.guard.Validate(ErrCollectDonationCommandIsNotConstructed)
}

// DonationID returns the donation being collected.
func (c CollectDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// CourierID returns the reporting courier.
func (c CollectDonationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CollectDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CollectDonationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
