package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	natspkg "github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/nats"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

// communityGW publishes community lifecycle events to NATS
type communityGW struct {
	natsClient *natspkg.Client
}

// NewCommunityGW creates a new NATS gateway instance
func NewCommunityGW(client *natspkg.Client) community.CommunityGW {
	return &communityGW{
		natsClient: client,
	}
}

// PublishCommunityActivated announces that a community crossed its activation threshold
func (g *communityGW) PublishCommunityActivated(ctx context.Context, result models.EvaluationResult) error {
	return g.natsClient.PublishJSON(constants.SubjectCommunityActivated, result)
}

// PublishCommunityDeactivated announces that a community fell below its deactivation threshold
func (g *communityGW) PublishCommunityDeactivated(ctx context.Context, result models.EvaluationResult) error {
	return g.natsClient.PublishJSON(constants.SubjectCommunityDeactivated, result)
}
