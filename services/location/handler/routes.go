package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
	httpHandler "github.com/usbtecnok/kaviar-v2-sub004/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers all HTTP routes. Beacon pings arrive from the
// driver app backend and sit behind the service API key.
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	internal := e.Group("/internal", apiKeyMiddleware.Handler("driver-service"))
	internal.POST("/drivers/:driverID/location", h.locationHTTP.UpdateLocation)
}
