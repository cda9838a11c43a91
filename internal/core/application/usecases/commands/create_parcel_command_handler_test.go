package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/commands"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"
	"github.com/visionyy32/Final-sub001/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetByTrackingCode(_ context.Context, _ parcel.TrackingCode) (*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetAll(_ context.Context) ([]*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

func testParty(t *testing.T, name, county string) parcel.Party {
	t.Helper()

	zone, err := kernel.NewZone(county)
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("0712345678")
	require.NoError(t, err)

	party, err := parcel.NewParty(name, "14 Moi Avenue", zone, phone, "", "")
	require.NoError(t, err)
	return party
}

func testCreateParcelCommand(t *testing.T) commands.CreateParcelCommand {
	t.Helper()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testParty(t, "Alice Wanjiku", "Nairobi"),
		testParty(t, "Brian Otieno", "Kiambu"),
		"Laptop",
		2.5,
		nil,
		"",
		parcel.PayOnDelivery,
		services.TierStandard,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewCostEstimator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	// 500 base + 2.5kg*100 + 200 nearby (Nairobi -> Kiambu), standard tier.
	require.Equal(t, 950, created.Cost().Amount())
	require.Equal(t, parcel.PendingPickup, created.Status())
	require.Equal(t, parcel.PaymentPending, created.PaymentStatus())
	require.Regexp(t, `^TRK\d{8}$`, created.TrackingCode().String())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, services.NewCostEstimator())
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateParcelCommand(t)

	uow := new(MockParcelUoW)
	factory := new(MockParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateParcelCommandHandler(factory, services.NewCostEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewCostEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateParcelCommand(t)

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewCostEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
