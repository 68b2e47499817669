package commands

import (
	"context"
)

// UpdateCourierLocationCommandHandler records a courier's latest position.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierLocationCommandHandler creates a handler for courier
// position updates.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position update.
func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, command UpdateCourierLocationCommand) error {
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

	repo := uow.CourierRepository()

	volunteer, err := repo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if err = volunteer.SetLocation(command.Location()); err != nil {
		return err
	}

	if err = repo.Update(ctx, volunteer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
