package commands_test

import (
	"context"
	"testing"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/courier"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/organization"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnrollUoW struct{ mock.Mock }

func (m *MockEnrollUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEnrollUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEnrollUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEnrollUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockEnrollUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

type MockEnrollUoWFactory struct{ mock.Mock }

func (m *MockEnrollUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

func TestRegisterCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	volunteer, err := courier.NewCourier(courierID, "Asha Verma")
	require.NoError(t, err)

	org, err := organization.NewOrganization(kernel.NewUUID(), "Helping Hands", kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewRegisterCourierCommand(courierID, org.ID())
	require.NoError(t, err)

	courierRepo := new(MockVolunteerCourierRepository)
	orgRepo := new(MockVerifyOrganizationRepository)
	uow := new(MockEnrollUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(volunteer, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEnrollUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertExpectations(t)
	orgRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.True(t, volunteer.IsRegisteredWith(org.ID()))
}

func TestRegisterCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterCourierCommand{} // not constructed properly

	factory := new(MockEnrollUoWFactory)
	handler := commands.NewRegisterCourierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterCourierCommandHandler_Handle_OrganizationNotFound(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	volunteer, err := courier.NewCourier(courierID, "Asha Verma")
	require.NoError(t, err)

	orgID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(courierID, orgID)
	require.NoError(t, err)

	courierRepo := new(MockVolunteerCourierRepository)
	orgRepo := new(MockVerifyOrganizationRepository)
	uow := new(MockEnrollUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(volunteer, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, orgID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEnrollUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	courierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.False(t, volunteer.IsRegisteredWith(orgID))
}

func TestRegisterCourierCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	volunteer, err := courier.NewCourier(courierID, "Asha Verma")
	require.NoError(t, err)

	org, err := organization.NewOrganization(kernel.NewUUID(), "Helping Hands", kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, volunteer.RegisterWithOrganization(org.ID()))

	cmd, err := commands.NewRegisterCourierCommand(courierID, org.ID())
	require.NoError(t, err)

	courierRepo := new(MockVolunteerCourierRepository)
	orgRepo := new(MockVerifyOrganizationRepository)
	uow := new(MockEnrollUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(volunteer, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEnrollUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Registering twice is a no-op, not an error
	require.NoError(t, err)
	assert.Len(t, volunteer.OrganizationIDs(), 1)
}
