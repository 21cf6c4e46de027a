package usecase

import (
	"time"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

type communityUC struct {
	cfg           *models.Config
	communityRepo community.CommunityRepo
	communityGW   community.CommunityGW
	now           func() time.Time
}

// NewCommunityUC creates a new community usecase
func NewCommunityUC(cfg *models.Config, communityRepo community.CommunityRepo, communityGW community.CommunityGW) community.CommunityUC {
	return &communityUC{
		cfg:           cfg,
		communityRepo: communityRepo,
		communityGW:   communityGW,
		now:           time.Now,
	}
}
