package usecase

import (
	"time"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

type dispatchUC struct {
	cfg              *models.Config
	rideRepo         dispatch.RideRepo
	confirmationRepo dispatch.ConfirmationRepo
	communities      dispatch.CommunityDirectory
	counter          dispatch.AvailabilityCounter
	policy           *community.NeighborhoodPolicy
	dispatchGW       dispatch.DispatchGW
	now              func() time.Time
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	rideRepo dispatch.RideRepo,
	confirmationRepo dispatch.ConfirmationRepo,
	communities dispatch.CommunityDirectory,
	counter dispatch.AvailabilityCounter,
	policy *community.NeighborhoodPolicy,
	dispatchGW dispatch.DispatchGW,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:              cfg,
		rideRepo:         rideRepo,
		confirmationRepo: confirmationRepo,
		communities:      communities,
		counter:          counter,
		policy:           policy,
		dispatchGW:       dispatchGW,
		now:              time.Now,
	}
}

func (uc *dispatchUC) confirmationTTL() time.Duration {
	seconds := uc.cfg.Dispatch.ConfirmationTTLSeconds
	if seconds <= 0 {
		seconds = 600
	}
	return time.Duration(seconds) * time.Second
}
