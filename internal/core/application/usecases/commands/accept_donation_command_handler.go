package commands

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/pkg/clock"
)

var (
	// ErrDonationAlreadyTaken is returned when the donation is no longer
	// Pending: another courier claimed it first. Callers map this to a
	// conflict response, never to a retry.
	ErrDonationAlreadyTaken = errors.New("donation has already been taken by another courier")
	// ErrCourierCapacityExceeded is returned when the courier already holds
	// the maximum number of concurrent active pickups.
	ErrCourierCapacityExceeded = errors.New("courier has reached the active pickup limit")
)

// AcceptDonationCommandHandler claims a pending donation for a courier.
//
// The claim is linearizable per donation: the handler locks the donation row
// before checking its status, so of two racing couriers exactly one wins and
// the other observes the donation taken. The capacity ceiling is counted
// inside the same transaction, making claim-and-count one atomic unit.
//
// Example:
//
//	handler := NewAcceptDonationCommandHandler(uowFactory, clock.System(), 30*time.Minute, 10)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrDonationAlreadyTaken):
//	    // 409 Conflict
//	case errors.Is(err, ErrCourierCapacityExceeded):
//	    // courier must deliver or wait for expiry before claiming more
//	}
type AcceptDonationCommandHandler struct {
	uowFactory   DonationUoWFactory
	clock        clock.Clock
	expiryWindow time.Duration
	capacity     int
}

// NewAcceptDonationCommandHandler creates a handler for donation claims.
// expiryWindow bounds how long an accepted pickup may sit uncollected;
// capacity is the courier's concurrent active pickup ceiling.
func NewAcceptDonationCommandHandler(
	uowFactory DonationUoWFactory,
	clk clock.Clock,
	expiryWindow time.Duration,
	capacity int,
) AcceptDonationCommandHandler {
	return AcceptDonationCommandHandler{
		uowFactory:   uowFactory,
		clock:        clk,
		expiryWindow: expiryWindow,
		capacity:     capacity,
	}
}

// Handle processes the claim. Stale pickups are swept first so a donation
// whose previous courier timed out is claimable again in the same request.
func (h AcceptDonationCommandHandler) Handle(ctx context.Context, command AcceptDonationCommand) error {
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

	if pledge.Status() != donation.Pending {
		return ErrDonationAlreadyTaken
	}

	activeCount, err := repo.CountActiveByCourier(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if activeCount >= h.capacity {
		return ErrCourierCapacityExceeded
	}

	if err = pledge.Accept(command.CourierID(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, pledge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
