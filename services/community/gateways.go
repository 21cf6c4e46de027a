package community

import (
	"context"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// CommunityGW defines the interface for community event publishing
type CommunityGW interface {
	PublishCommunityActivated(ctx context.Context, result models.EvaluationResult) error
	PublishCommunityDeactivated(ctx context.Context, result models.EvaluationResult) error
}
