package commands

import (
	"context"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/pkg/clock"
)

// CreateDonationCommandHandler registers a supplier's pledge as a Pending
// donation available for courier pickup.
type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
	clock      clock.Clock
}

// NewCreateDonationCommandHandler creates a handler for donation pledges.
func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory, clk clock.Clock) CreateDonationCommandHandler {
	return CreateDonationCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the pledge command: builds the Pending aggregate with the
// current time and persists it.
func (h CreateDonationCommandHandler) Handle(ctx context.Context, command CreateDonationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pledge, err := donation.NewDonation(
		command.DonationID(),
		command.SupplierID(),
		command.FoodDescription(),
		command.Quantity(),
		command.PickupAddress(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DonationRepository().Add(ctx, pledge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
