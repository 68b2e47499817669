package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents an organization operator verifying that
// a donation physically arrived at one of their camps.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command confirming a delivery.
func NewConfirmDeliveryCommand(donationID kernel.UUID, operatorID kernel.UUID) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setOperatorID(operatorID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// DonationID returns the donation being confirmed.
func (c ConfirmDeliveryCommand) DonationID() kernel.UUID {
	return c.donationID
}

// OperatorID returns the confirming operator.
func (c ConfirmDeliveryCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *ConfirmDeliveryCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *ConfirmDeliveryCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
