package gateway

import (
	"context"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	natspkg "github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/nats"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// dispatchGW publishes dispatch events to NATS
type dispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new NATS gateway instance
func NewDispatchGW(client *natspkg.Client) dispatch.DispatchGW {
	return &dispatchGW{
		natsClient: client,
	}
}

// PublishRideCreated announces a newly created ride
func (g *dispatchGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return g.natsClient.PublishJSON(constants.SubjectRideCreated, ride)
}

// PublishFeeInit kicks off downstream fee and bonus accounting
func (g *dispatchGW) PublishFeeInit(ctx context.Context, event models.FeeInitEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectRideFeeInit, event)
}

// PublishConfirmationIssued announces a pending out-of-fence confirmation
func (g *dispatchGW) PublishConfirmationIssued(ctx context.Context, confirmation *models.OutOfFenceConfirmation) error {
	return g.natsClient.PublishJSON(constants.SubjectConfirmationIssued, confirmation)
}
