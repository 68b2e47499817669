package commands_test

import (
	"context"
	"testing"
	"time"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/organization"
	"foodbridge/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVerifyDonationRepository struct{ mock.Mock }

func (m *MockVerifyDonationRepository) Add(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockVerifyDonationRepository) Update(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockVerifyDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockVerifyDonationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockVerifyDonationRepository) GetActiveByCourierForUpdate(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*donation.Donation, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*donation.Donation), args.Error(1)
}

func (m *MockVerifyDonationRepository) CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	args := m.Called(ctx, courierID)
	return args.Int(0), args.Error(1)
}

func (m *MockVerifyDonationRepository) ReleaseExpiredPickups(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockVerifyCampRepository struct{ mock.Mock }

func (m *MockVerifyCampRepository) Add(ctx context.Context, c *camp.Camp) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockVerifyCampRepository) Update(ctx context.Context, c *camp.Camp) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockVerifyCampRepository) Get(ctx context.Context, id kernel.UUID) (*camp.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*camp.Camp), args.Error(1)
}

func (m *MockVerifyCampRepository) GetActiveByOrganizations(
	ctx context.Context,
	organizationIDs []kernel.UUID,
) ([]*camp.Camp, error) {
	args := m.Called(ctx, organizationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*camp.Camp), args.Error(1)
}

type MockVerifyOrganizationRepository struct{ mock.Mock }

func (m *MockVerifyOrganizationRepository) Add(ctx context.Context, o *organization.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockVerifyOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

type MockVerifyUoW struct{ mock.Mock }

func (m *MockVerifyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerifyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerifyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVerifyUoW) DonationRepository() ports.DonationRepository {
	args := m.Called()
	return args.Get(0).(ports.DonationRepository)
}

func (m *MockVerifyUoW) CampRepository() ports.CampRepository {
	args := m.Called()
	return args.Get(0).(ports.CampRepository)
}

func (m *MockVerifyUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

type MockVerifyUoWFactory struct{ mock.Mock }

func (m *MockVerifyUoWFactory) Create() commands.VerificationUoW {
	args := m.Called()
	return args.Get(0).(commands.VerificationUoW)
}

// verificationFixture wires a donation sitting in Verifying at a camp run by
// an organization with a known operator.
type verificationFixture struct {
	pledge     *donation.Donation
	drive      *camp.Camp
	org        *organization.Organization
	operatorID kernel.UUID
}

func newVerificationFixture(t *testing.T, deliveredAt time.Time) verificationFixture {
	t.Helper()

	operatorID := kernel.NewUUID()
	org, err := organization.NewOrganization(kernel.NewUUID(), "Helping Hands", operatorID)
	require.NoError(t, err)

	drive, err := camp.NewCamp(kernel.NewUUID(), org.ID(), "Riverside Relief Camp",
		deliveredAt.Add(-24*time.Hour))
	require.NoError(t, err)

	courierID := kernel.NewUUID()
	pledge := newAcceptedDonation(t, kernel.NewUUID(), courierID, deliveredAt.Add(-30*time.Minute))
	require.NoError(t, pledge.Collect(courierID, deliveredAt.Add(-20*time.Minute)))
	require.NoError(t, pledge.DeliverTo(drive.ID(), deliveredAt))

	return verificationFixture{
		pledge:     pledge,
		drive:      drive,
		org:        org,
		operatorID: operatorID,
	}
}

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fix := newVerificationFixture(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	cmd, err := commands.NewConfirmDeliveryCommand(fix.pledge.ID(), fix.operatorID)
	require.NoError(t, err)

	donationRepo := new(MockVerifyDonationRepository)
	campRepo := new(MockVerifyCampRepository)
	orgRepo := new(MockVerifyOrganizationRepository)
	uow := new(MockVerifyUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("GetForUpdate", ctx, fix.pledge.ID()).Return(fix.pledge, nil).Once(),
		uow.On("CampRepository").Return(campRepo).Once(),
		campRepo.On("Get", ctx, fix.drive.ID()).Return(fix.drive, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, fix.org.ID()).Return(fix.org, nil).Once(),
		donationRepo.On("Update", ctx, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVerifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	donationRepo.AssertExpectations(t)
	campRepo.AssertExpectations(t)
	orgRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, donation.Delivered, fix.pledge.Status())
}

func TestConfirmDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConfirmDeliveryCommand{} // not constructed properly

	factory := new(MockVerifyUoWFactory)
	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrConfirmDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmDeliveryCommandHandler_Handle_NotVerifying(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Still in Collected: no target camp yet, so no authorization lookups
	courierID := kernel.NewUUID()
	pledge := newAcceptedDonation(t, kernel.NewUUID(), courierID, now.Add(-30*time.Minute))
	require.NoError(t, pledge.Collect(courierID, now.Add(-20*time.Minute)))

	cmd, err := commands.NewConfirmDeliveryCommand(pledge.ID(), kernel.NewUUID())
	require.NoError(t, err)

	donationRepo := new(MockVerifyDonationRepository)
	uow := new(MockVerifyUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("GetForUpdate", ctx, pledge.ID()).Return(pledge, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVerifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "CampRepository")
	uow.AssertNotCalled(t, "OrganizationRepository")
	assert.Equal(t, donation.Collected, pledge.Status())
}

func TestConfirmDeliveryCommandHandler_Handle_OperatorNotAuthorized(t *testing.T) {
	ctx := t.Context()
	fix := newVerificationFixture(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	// An operator from some other organization
	cmd, err := commands.NewConfirmDeliveryCommand(fix.pledge.ID(), kernel.NewUUID())
	require.NoError(t, err)

	donationRepo := new(MockVerifyDonationRepository)
	campRepo := new(MockVerifyCampRepository)
	orgRepo := new(MockVerifyOrganizationRepository)
	uow := new(MockVerifyUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(donationRepo).Once(),
		donationRepo.On("GetForUpdate", ctx, fix.pledge.ID()).Return(fix.pledge, nil).Once(),
		uow.On("CampRepository").Return(campRepo).Once(),
		campRepo.On("Get", ctx, fix.drive.ID()).Return(fix.drive, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, fix.org.ID()).Return(fix.org, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVerifyUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCampNotManagedByOperator)
	donationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, donation.Verifying, fix.pledge.Status())
}
