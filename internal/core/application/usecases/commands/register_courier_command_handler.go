package commands

import (
	"context"
)

// RegisterCourierCommandHandler links a courier to an organization. The
// organization must exist; registering twice is a no-op.
type RegisterCourierCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for organization
// registration.
func NewRegisterCourierCommandHandler(uowFactory RegistrationUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, command RegisterCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	volunteer, err := courierRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	org, err := uow.OrganizationRepository().Get(ctx, command.OrganizationID())
	if err != nil {
		return err
	}

	if err = volunteer.RegisterWithOrganization(org.ID()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, volunteer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
