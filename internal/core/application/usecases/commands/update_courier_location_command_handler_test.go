package commands_test

import (
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/courier"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourierLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	volunteer, err := courier.NewCourier(courierID, "Asha Verma")
	require.NoError(t, err)

	position, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, position)
	require.NoError(t, err)

	repo := new(MockVolunteerCourierRepository)
	uow := new(MockRosterUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, courierID).Return(volunteer, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.NotNil(t, volunteer.Location())
	equal, err := volunteer.Location().IsEqual(position)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestUpdateCourierLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateCourierLocationCommand{} // not constructed properly

	factory := new(MockRosterUoWFactory)
	handler := commands.NewUpdateCourierLocationCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateCourierLocationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateCourierLocationCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, position)
	require.NoError(t, err)

	repo := new(MockVolunteerCourierRepository)
	uow := new(MockRosterUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Get", ctx, courierID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierLocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
