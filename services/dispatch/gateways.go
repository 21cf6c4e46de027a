package dispatch

import (
	"context"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// DispatchGW defines the interface for dispatch event publishing
type DispatchGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishFeeInit(ctx context.Context, event models.FeeInitEvent) error
	PublishConfirmationIssued(ctx context.Context, confirmation *models.OutOfFenceConfirmation) error
}
