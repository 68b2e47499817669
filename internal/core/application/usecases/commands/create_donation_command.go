package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var (
	ErrCreateDonationCommandIsNotConstructed = errors.New(
		"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
	)
	ErrFoodDescriptionIsEmpty = errors.New("food description is required")
	ErrQuantityIsInvalid      = errors.New("quantity must be greater than 0")
	ErrPickupAddressIsEmpty   = errors.New("pickup address is required")
)

// CreateDonationCommand represents a supplier's pledge of surplus food.
// Encapsulates what is being donated and where the courier should collect it.
//
// Example:
//
//	donationID := kernel.NewUUID()
//	cmd, err := NewCreateDonationCommand(donationID, supplierID, "40 veg thalis", 40, "12 MG Road")
//	if err != nil {
//	    return fmt.Errorf("invalid donation data: %w", err)
//	}
//
//	handler := NewCreateDonationCommandHandler(uowFactory, clock.System())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create donation: %w", err)
//	}
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID      kernel.UUID
	supplierID      kernel.UUID
	foodDescription string
	quantity        int
	pickupAddress   string

	guard guard.ConstructorGuard
}

// NewCreateDonationCommand creates a command to pledge a new donation.
// Validates that both IDs are valid, the description and address are not
// empty, and the quantity is positive.
func NewCreateDonationCommand(
	donationID kernel.UUID,
	supplierID kernel.UUID,
	foodDescription string,
	quantity int,
	pickupAddress string,
) (CreateDonationCommand, error) {
	command := CreateDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setSupplierID(supplierID),
		command.setFoodDescription(foodDescription),
		command.setQuantity(quantity),
		command.setPickupAddress(pickupAddress),
	); err != nil {
		return CreateDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

// DonationID returns the unique identifier for the new donation.
func (c CreateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// SupplierID returns the pledging supplier's identifier.
func (c CreateDonationCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// FoodDescription returns what is being donated.
func (c CreateDonationCommand) FoodDescription() string {
	return c.foodDescription
}

// Quantity returns the approximate number of servings.
func (c CreateDonationCommand) Quantity() int {
	return c.quantity
}

// PickupAddress returns where the courier should collect the food.
func (c CreateDonationCommand) PickupAddress() string {
	return c.pickupAddress
}

func (c *CreateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CreateDonationCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateDonationCommand) setFoodDescription(foodDescription string) error {
	if foodDescription == "" {
		return ErrFoodDescriptionIsEmpty
	}

	c.foodDescription = foodDescription
	return nil
}

func (c *CreateDonationCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateDonationCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsEmpty
	}

	c.pickupAddress = pickupAddress
	return nil
}
