package commands

import (
	"context"
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
)

// ErrCampNotManagedByOperator is returned when an operator acts on a
// donation delivered to a camp outside their organization. Callers map this
// to a forbidden response.
var ErrCampNotManagedByOperator = errors.New("operator does not manage the camp's organization")

// ConfirmDeliveryCommandHandler finalizes a delivery after the receiving
// organization verified it.
//
// Business rules:
//   - The donation must be Verifying
//   - The operator must manage the organization running the target camp
type ConfirmDeliveryCommandHandler struct {
	uowFactory VerificationUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory VerificationUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation, moving the donation to Delivered.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	// Status guard before authorization: only Verifying donations carry a
	// target camp to authorize against.
	if _, err = pledge.Status().Confirm(); err != nil {
		return err
	}

	if err = authorizeOperatorForCamp(ctx, uow, *pledge.TargetCamp(), command.OperatorID()); err != nil {
		return err
	}

	if err = pledge.Confirm(); err != nil {
		return err
	}

	if err = repo.Update(ctx, pledge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// authorizeOperatorForCamp checks that the operator manages the organization
// running the given camp. Shared by the confirmation and rating handlers.
func authorizeOperatorForCamp(
	ctx context.Context,
	uow VerificationUoW,
	campID kernel.UUID,
	operatorID kernel.UUID,
) error {
	drive, err := uow.CampRepository().Get(ctx, campID)
	if err != nil {
		return err
	}

	org, err := uow.OrganizationRepository().Get(ctx, drive.OrganizationID())
	if err != nil {
		return err
	}

	if !org.ManagedBy(operatorID) {
		return ErrCampNotManagedByOperator
	}

	return nil
}
