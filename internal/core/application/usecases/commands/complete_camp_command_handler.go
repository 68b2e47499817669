package commands

import (
	"context"

	"foodbridge/internal/pkg/clock"
)

// CompleteCampCommandHandler closes a collection drive. Completed camps stop
// accepting deliveries and drop out of nearest-camp resolution; donations
// already delivered there keep their record.
type CompleteCampCommandHandler struct {
	uowFactory CampUoWFactory
	clock      clock.Clock
}

// NewCompleteCampCommandHandler creates a handler for camp completion.
func NewCompleteCampCommandHandler(uowFactory CampUoWFactory, clk clock.Clock) CompleteCampCommandHandler {
	return CompleteCampCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the completion. Returns ErrCampNotManagedByOperator when
// the operator does not run the camp's organization, and
// camp.ErrCampAlreadyCompleted on a repeat completion.
func (h CompleteCampCommandHandler) Handle(ctx context.Context, command CompleteCampCommand) error {
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

	campRepo := uow.CampRepository()

	drive, err := campRepo.Get(ctx, command.CampID())
	if err != nil {
		return err
	}

	org, err := uow.OrganizationRepository().Get(ctx, drive.OrganizationID())
	if err != nil {
		return err
	}

	if !org.ManagedBy(command.OperatorID()) {
		return ErrCampNotManagedByOperator
	}

	if err = drive.Complete(h.clock.Now()); err != nil {
		return err
	}

	if err = campRepo.Update(ctx, drive); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
