package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPledgeDonationRepository struct{ mock.Mock }

func (m *MockPledgeDonationRepository) Add(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPledgeDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPledgeDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockPledgeDonationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockPledgeDonationRepository) GetActiveByCourierForUpdate(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*donation.Donation, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donation.Donation), args.Error(1)
}

func (m *MockPledgeDonationRepository) CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	args := m.Called(ctx, courierID)
	return args.Int(0), args.Error(1)
}

func (m *MockPledgeDonationRepository) ReleaseExpiredPickups(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockPledgeUoW struct{ mock.Mock }

func (m *MockPledgeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPledgeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPledgeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPledgeUoW) DonationRepository() ports.DonationRepository {
	args := m.Called()
	return args.Get(0).(ports.DonationRepository)
}

type MockPledgeUoWFactory struct{ mock.Mock }

func (m *MockPledgeUoWFactory) Create() commands.DonationUoW {
	args := m.Called()
	return args.Get(0).(commands.DonationUoW)
}

func TestCreateDonationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pledgedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(), kernel.NewUUID(), "40 veg thalis", 40, "12 MG Road")
	require.NoError(t, err)

	repo := new(MockPledgeDonationRepository)
	uow := new(MockPledgeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPledgeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDonationCommandHandler(factory, clock.NewFixed(pledgedAt))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)

	// The persisted aggregate starts Pending with the handler clock's time
	added := repo.Calls[0].Arguments[1].(*donation.Donation)
	assert.Equal(t, donation.Pending, added.Status())
	assert.Equal(t, pledgedAt, added.CreatedAt())
	assert.Equal(t, cmd.DonationID(), added.ID())
}

func TestCreateDonationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDonationCommand{} // not constructed properly

	factory := new(MockPledgeUoWFactory)
	handler := commands.NewCreateDonationCommandHandler(factory, clock.System())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDonationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDonationCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(), kernel.NewUUID(), "fruit crates", 12, "Market Lane 3")
	require.NoError(t, err)

	uow := new(MockPledgeUoW)
	factory := new(MockPledgeUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateDonationCommandHandler(factory, clock.System())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateDonationCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(), kernel.NewUUID(), "fruit crates", 12, "Market Lane 3")
	require.NoError(t, err)

	repo := new(MockPledgeDonationRepository)
	uow := new(MockPledgeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*donation.Donation")).
			Return(errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPledgeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDonationCommandHandler(factory, clock.System())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCreateDonationCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDonationCommand(
		kernel.NewUUID(), kernel.NewUUID(), "fruit crates", 12, "Market Lane 3")
	require.NoError(t, err)

	repo := new(MockPledgeDonationRepository)
	uow := new(MockPledgeUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPledgeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDonationCommandHandler(factory, clock.System())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
