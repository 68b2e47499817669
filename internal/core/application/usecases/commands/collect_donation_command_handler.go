package commands

import (
	"context"
	"time"

	"foodbridge/internal/pkg/clock"
)

// CollectDonationCommandHandler marks an accepted donation as physically
// picked up by its courier. Once collected, the pickup can no longer expire
// back to the unclaimed pool.
//
// The expiry sweep runs first: a courier who waited past the window finds
// the donation already released and gets a state error instead of silently
// keeping an expired claim.
type CollectDonationCommandHandler struct {
	uowFactory   DonationUoWFactory
	clock        clock.Clock
	expiryWindow time.Duration
}

// NewCollectDonationCommandHandler creates a handler for pickup collection.
func NewCollectDonationCommandHandler(
	uowFactory DonationUoWFactory,
	clk clock.Clock,
	expiryWindow time.Duration,
) CollectDonationCommandHandler {
	return CollectDonationCommandHandler{
		uowFactory:   uowFactory,
		clock:        clk,
		expiryWindow: expiryWindow,
	}
}

// Handle processes the collection. Returns donation.ErrCourierMismatch when
// a courier reports pickup of somebody else's claim; callers map that to a
// forbidden response.
func (h CollectDonationCommandHandler) Handle(ctx context.Context, command CollectDonationCommand) error {
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
	now := h.clock.Now()

	if _, err := repo.ReleaseExpiredPickups(ctx, now.Add(-h.expiryWindow)); err != nil {
		return err
	}

	pledge, err := repo.GetForUpdate(ctx, command.DonationID())
	if err != nil {
		return err
	}

	if err = pledge.Collect(command.CourierID(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, pledge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
