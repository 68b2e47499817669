package commands

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/pkg/clock"
)

// ErrCampNotActive is returned when delivering to a camp whose drive has
// been completed.
var ErrCampNotActive = errors.New("camp is not accepting deliveries")

// DeliverDonationsCommandHandler moves every active donation a courier
// holds to Verifying at one camp, in a single transaction.
//
// Business rules:
//   - The camp must exist and be active
//   - All of the courier's Accepted and Collected donations move together;
//     a failure on any of them rolls the whole drop back
//   - A courier with nothing to deliver succeeds with a count of zero
//
// Handle returns how many donations were delivered.
type DeliverDonationsCommandHandler struct {
	uowFactory   DeliveryUoWFactory
	clock        clock.Clock
	expiryWindow time.Duration
}

// NewDeliverDonationsCommandHandler creates a handler for bulk deliveries.
func NewDeliverDonationsCommandHandler(
	uowFactory DeliveryUoWFactory,
	clk clock.Clock,
	expiryWindow time.Duration,
) DeliverDonationsCommandHandler {
	return DeliverDonationsCommandHandler{
		uowFactory:   uowFactory,
		clock:        clk,
		expiryWindow: expiryWindow,
	}
}

// Handle processes the bulk delivery and returns the number of donations
// dropped at the camp.
func (h DeliverDonationsCommandHandler) Handle(ctx context.Context, command DeliverDonationsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	donationRepo := uow.DonationRepository()
	now := h.clock.Now()

	if _, err := donationRepo.ReleaseExpiredPickups(ctx, now.Add(-h.expiryWindow)); err != nil {
		return 0, err
	}

	drive, err := uow.CampRepository().Get(ctx, command.CampID())
	if err != nil {
		return 0, err
	}
	if !drive.IsActive() {
		return 0, ErrCampNotActive
	}

	active, err := donationRepo.GetActiveByCourierForUpdate(ctx, command.CourierID())
	if err != nil {
		return 0, err
	}

	for _, pledge := range active {
		if err = pledge.DeliverTo(drive.ID(), now); err != nil {
			return 0, err
		}

		if err = donationRepo.Update(ctx, pledge); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(active), nil
}
