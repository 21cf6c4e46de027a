package usecase

import (
	"time"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
)

type locationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	resolver     location.FenceResolver
	now          func() time.Time
}

// NewLocationUC creates a new location usecase
func NewLocationUC(cfg *models.Config, locationRepo location.LocationRepo, resolver location.FenceResolver) location.LocationUC {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		resolver:     resolver,
		now:          time.Now,
	}
}

func (uc *locationUC) stalenessWindow() time.Duration {
	seconds := uc.cfg.Dispatch.LocationStalenessSeconds
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}
