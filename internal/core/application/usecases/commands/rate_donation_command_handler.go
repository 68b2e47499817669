package commands

import (
	"context"
)

// RateDonationCommandHandler stores an operator's score and review for a
// delivered donation.
//
// Business rules:
//   - The donation must be Delivered
//   - The operator must manage the organization running the target camp
//   - Re-rating overwrites the previous score and review
type RateDonationCommandHandler struct {
	uowFactory VerificationUoWFactory
}

// NewRateDonationCommandHandler creates a handler for delivery ratings.
func NewRateDonationCommandHandler(uowFactory VerificationUoWFactory) RateDonationCommandHandler {
	return RateDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating.
func (h RateDonationCommandHandler) Handle(ctx context.Context, command RateDonationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DonationRepository()

	pledge, err := repo.GetForUpdate(ctx, command.DonationID())
	if err != nil {
		return err
	}

	// Donations without a target camp cannot be Delivered; let Rate surface
	// the status error.
	if pledge.TargetCamp() == nil {
		return pledge.Rate(command.Score(), command.Review())
	}

	if err = authorizeOperatorForCamp(ctx, uow, *pledge.TargetCamp(), command.OperatorID()); err != nil {
		return err
	}

	if err = pledge.Rate(command.Score(), command.Review()); err != nil {
		return err
	}

	if err = repo.Update(ctx, pledge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
