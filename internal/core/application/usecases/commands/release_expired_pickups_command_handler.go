package commands

import (
	"context"
	"time"

	"foodbridge/internal/pkg/clock"
)

// ReleaseExpiredPickupsCommandHandler returns donations whose courier
// accepted them longer than the expiry window ago, but never collected the
// food, to the unclaimed pool. The whole sweep is one conditional update;
// collected and later donations are never touched.
//
// The sweep also runs lazily inside the pickup and delivery handlers; this
// standalone command backs the periodic job so stale pickups free up even
// when no courier is active.
type ReleaseExpiredPickupsCommandHandler struct {
	uowFactory   DonationUoWFactory
	clock        clock.Clock
	expiryWindow time.Duration
}

// NewReleaseExpiredPickupsCommandHandler creates a handler for the expiry
// sweep.
func NewReleaseExpiredPickupsCommandHandler(
	uowFactory DonationUoWFactory,
	clk clock.Clock,
	expiryWindow time.Duration,
) ReleaseExpiredPickupsCommandHandler {
	return ReleaseExpiredPickupsCommandHandler{
		uowFactory:   uowFactory,
		clock:        clk,
		expiryWindow: expiryWindow,
	}
}

// Handle runs the sweep and returns how many pickups were released. An
// empty sweep is a successful no-op.
func (h ReleaseExpiredPickupsCommandHandler) Handle(
	ctx context.Context,
	command ReleaseExpiredPickupsCommand,
) (int64, error) {
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

	cutoff := h.clock.Now().Add(-h.expiryWindow)
	released, err := uow.DonationRepository().ReleaseExpiredPickups(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
