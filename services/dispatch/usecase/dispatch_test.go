package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/mocks"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type dispatchFixture struct {
	uc               *dispatchUC
	rideRepo         *mocks.MockRideRepo
	confirmationRepo *mocks.MockConfirmationRepo
	communities      *mocks.MockCommunityDirectory
	counter          *mocks.MockAvailabilityCounter
	gw               *mocks.MockDispatchGW
}

func newDispatchFixture(t *testing.T, ctrl *gomock.Controller, policyCfg models.PolicyConfig) *dispatchFixture {
	t.Helper()

	f := &dispatchFixture{
		rideRepo:         mocks.NewMockRideRepo(ctrl),
		confirmationRepo: mocks.NewMockConfirmationRepo(ctrl),
		communities:      mocks.NewMockCommunityDirectory(ctrl),
		counter:          mocks.NewMockAvailabilityCounter(ctrl),
		gw:               mocks.NewMockDispatchGW(ctrl),
	}

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{ConfirmationTTLSeconds: 600},
		Policy:   policyCfg,
	}
	policy := community.NewNeighborhoodPolicy(policyCfg)

	f.uc = NewDispatchUC(cfg, f.rideRepo, f.confirmationRepo, f.communities, f.counter, policy, f.gw).(*dispatchUC)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func activeCommunity(name string) *models.Community {
	return &models.Community{
		ID:       uuid.New(),
		Name:     name,
		IsActive: true,
	}
}

func comunidadeRequest(passengerID uuid.UUID) models.RideRequest {
	lat, lng := -22.9519, -43.2105
	return models.RideRequest{
		PassengerID:  passengerID.String(),
		Type:         models.RideTypeComunidade,
		Origin:       "Rua do Russel 300",
		Destination:  "Avenida Atlantica 1702",
		Price:        18.50,
		PassengerLat: &lat,
		PassengerLng: &lng,
	}
}

func TestRequestRide_InvalidPassengerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	result, err := f.uc.RequestRide(context.Background(), models.RideRequest{PassengerID: "not-a-uuid"})

	assert.ErrorIs(t, err, dispatch.ErrValidation)
	assert.Nil(t, result)
}

func TestRequestRide_MissingRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	req := comunidadeRequest(uuid.New())
	req.Destination = ""

	result, err := f.uc.RequestRide(context.Background(), req)

	assert.ErrorIs(t, err, dispatch.ErrValidation)
	assert.Nil(t, result)
}

func TestRequestRide_NegativePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	req := comunidadeRequest(uuid.New())
	req.Price = -1

	_, err := f.uc.RequestRide(context.Background(), req)

	assert.ErrorIs(t, err, dispatch.ErrValidation)
}

func TestRequestRide_PlainRideSkipsFenceEvaluation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	req := comunidadeRequest(passengerID)
	req.Type = models.RideTypeNormal
	req.PassengerLat = nil
	req.PassengerLng = nil

	created := &models.Ride{ID: uuid.New(), PassengerID: passengerID, Type: models.RideTypeNormal}
	f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, models.RideTypeNormal, ride.Type)
			assert.Nil(t, ride.CommunityID)
			assert.False(t, ride.FallbackOutOfFence)
			return created, nil
		})
	f.gw.EXPECT().PublishRideCreated(gomock.Any(), created).Return(nil)
	f.gw.EXPECT().PublishFeeInit(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.OutcomeRideCreated, result.Outcome)
	assert.Equal(t, created, result.Ride)
}

func TestRequestRide_CommunityRideRequiresCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	req := comunidadeRequest(uuid.New())
	req.PassengerLat = nil
	req.PassengerLng = nil

	_, err := f.uc.RequestRide(context.Background(), req)

	assert.ErrorIs(t, err, dispatch.ErrValidation)
}

func TestRequestRide_CommunityRideRejectsOutOfRangeCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	req := comunidadeRequest(uuid.New())
	badLat := 123.0
	req.PassengerLat = &badLat

	_, err := f.uc.RequestRide(context.Background(), req)

	assert.ErrorIs(t, err, dispatch.ErrValidation)
}

func TestRequestRide_NoCommunityAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).
		Return(nil, community.ErrCommunityNotFound)

	_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	assert.ErrorIs(t, err, dispatch.ErrNoCommunityAssigned)
}

func TestRequestRide_CommunityInactive(t *testing.T) {
	tests := []struct {
		name string
		comm *models.Community
	}{
		{
			name: "deactivated community",
			comm: &models.Community{ID: uuid.New(), Name: "vidigal", IsActive: false},
		},
		{
			name: "archived community",
			comm: &models.Community{ID: uuid.New(), Name: "vidigal", IsActive: true, Archived: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

			passengerID := uuid.New()
			f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).
				Return(tt.comm, nil)

			_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

			assert.ErrorIs(t, err, dispatch.ErrCommunityInactive)
		})
	}
}

func TestRequestRide_InFenceCreatesComunidadeRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	comm := activeCommunity("vidigal")
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 2, OutOfFence: 1}, nil)

	created := &models.Ride{ID: uuid.New(), PassengerID: passengerID, Type: models.RideTypeComunidade}
	f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, models.RideTypeComunidade, ride.Type)
			require.NotNil(t, ride.CommunityID)
			assert.Equal(t, comm.ID, *ride.CommunityID)
			assert.False(t, ride.FallbackOutOfFence)
			assert.Equal(t, 2, ride.DriversInFenceCount)
			return created, nil
		})
	f.gw.EXPECT().PublishRideCreated(gomock.Any(), created).Return(nil)
	f.gw.EXPECT().PublishFeeInit(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.OutcomeInFenceOK, result.Outcome)
	require.NotNil(t, result.GeofenceInfo)
	assert.Equal(t, 2, result.GeofenceInfo.InFence)
	assert.Equal(t, 1, result.GeofenceInfo.OutOfFence)
}

func TestRequestRide_OutOfFenceIssuesConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	comm := activeCommunity("vidigal")
	req := comunidadeRequest(passengerID)

	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 3}, nil)

	expiresAt := fixedNow.Add(10 * time.Minute)
	issued := &models.OutOfFenceConfirmation{
		Token:       "abcdef0123456789",
		PassengerID: passengerID,
		CommunityID: comm.ID,
		ExpiresAt:   expiresAt,
	}
	f.confirmationRepo.EXPECT().
		Issue(gomock.Any(), passengerID, comm.ID, gomock.Any(), gomock.Any(), 10*time.Minute).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, payload models.ConfirmationPayload, snapshot models.GeofenceSnapshot, _ time.Duration) (*models.OutOfFenceConfirmation, error) {
			assert.Equal(t, req.Origin, payload.Origin)
			assert.Equal(t, req.Destination, payload.Destination)
			assert.Equal(t, req.Price, payload.Price)
			assert.Equal(t, 0, snapshot.InFence)
			assert.Equal(t, 3, snapshot.OutOfFence)
			return issued, nil
		})
	f.gw.EXPECT().PublishConfirmationIssued(gomock.Any(), issued).Return(nil)

	result, err := f.uc.RequestRide(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.OutcomeRequiresConfirmation, result.Outcome)
	assert.True(t, result.RequiresConfirmation)
	assert.Equal(t, issued.Token, result.ConfirmationToken)
	require.NotNil(t, result.ExpiresAt)
	assert.Equal(t, expiresAt, *result.ExpiresAt)
	require.NotNil(t, result.GeofenceInfo)
	assert.Equal(t, 0, result.GeofenceInfo.InFence)
	assert.Equal(t, 3, result.GeofenceInfo.OutOfFence)
}

func TestRequestRide_NoDriversAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	comm := activeCommunity("vidigal")
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 0}, nil)

	_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	assert.ErrorIs(t, err, dispatch.ErrNoDriversAvailable)
}

func TestRequestRide_SensitiveBlockedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{
		SensitiveNeighborhoods: []string{"mare"},
		SensitiveFallback:      models.SensitiveFallbackBlocked,
	})

	passengerID := uuid.New()
	comm := activeCommunity("mare")
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 5}, nil)

	_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	assert.ErrorIs(t, err, dispatch.ErrSensitiveFallbackUnavailable)
}

func TestRequestRide_SensitiveWithoutNeighbors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{
		SensitiveNeighborhoods: []string{"mare"},
		SensitiveFallback:      models.SensitiveFallbackNeighborOnly,
	})

	passengerID := uuid.New()
	comm := activeCommunity("mare")
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 5}, nil)

	_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	assert.ErrorIs(t, err, dispatch.ErrSensitiveFallbackUnavailable)
}

func TestRequestRide_SensitiveNeighborCoverageAllowsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{
		SensitiveNeighborhoods: []string{"mare"},
		NeighborMap:            map[string][]string{"mare": {"ramos"}},
		SensitiveFallback:      models.SensitiveFallbackNeighborOnly,
	})

	passengerID := uuid.New()
	comm := activeCommunity("mare")
	neighbor := activeCommunity("ramos")

	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 2}, nil)
	f.communities.EXPECT().GetCommunityByName(gomock.Any(), "ramos").Return(neighbor, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), neighbor.ID).
		Return(models.FenceCount{InFence: 1, OutOfFence: 0}, nil)

	issued := &models.OutOfFenceConfirmation{Token: "tok", ExpiresAt: fixedNow.Add(10 * time.Minute)}
	f.confirmationRepo.EXPECT().
		Issue(gomock.Any(), passengerID, comm.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(issued, nil)
	f.gw.EXPECT().PublishConfirmationIssued(gomock.Any(), issued).Return(nil)

	result, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRequiresConfirmation, result.Outcome)
}

func TestRequestRide_SensitiveNeighborsEmptyOfDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{
		SensitiveNeighborhoods: []string{"mare"},
		NeighborMap:            map[string][]string{"mare": {"ramos", "olaria"}},
		SensitiveFallback:      models.SensitiveFallbackNeighborOnly,
	})

	passengerID := uuid.New()
	comm := activeCommunity("mare")
	ramos := activeCommunity("ramos")

	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 2}, nil)
	f.communities.EXPECT().GetCommunityByName(gomock.Any(), "ramos").Return(ramos, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), ramos.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 1}, nil)
	// Unregistered neighbors are skipped rather than failing the request.
	f.communities.EXPECT().GetCommunityByName(gomock.Any(), "olaria").
		Return(nil, community.ErrCommunityNotFound)

	_, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	assert.ErrorIs(t, err, dispatch.ErrNoDriversAvailable)
}

func TestRequestRide_ConfirmationPublishFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDispatchFixture(t, ctrl, models.PolicyConfig{})

	passengerID := uuid.New()
	comm := activeCommunity("vidigal")
	f.communities.EXPECT().GetCommunityByPassenger(gomock.Any(), passengerID).Return(comm, nil)
	f.counter.EXPECT().CountByFence(gomock.Any(), comm.ID).
		Return(models.FenceCount{InFence: 0, OutOfFence: 1}, nil)

	issued := &models.OutOfFenceConfirmation{Token: "tok", ExpiresAt: fixedNow.Add(10 * time.Minute)}
	f.confirmationRepo.EXPECT().
		Issue(gomock.Any(), passengerID, comm.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(issued, nil)
	f.gw.EXPECT().PublishConfirmationIssued(gomock.Any(), issued).
		Return(errors.New("nats down"))

	result, err := f.uc.RequestRide(context.Background(), comunidadeRequest(passengerID))

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRequiresConfirmation, result.Outcome)
}
