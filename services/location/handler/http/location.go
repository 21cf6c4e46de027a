package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
)

// LocationHandler handles HTTP requests for driver location pings
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// LocationPingRequest is the driver beacon payload
type LocationPingRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	IsActive  bool       `json:"is_active"`
	Timestamp *time.Time `json:"timestamp"`
}

// UpdateLocation handles POST /internal/drivers/:driverID/location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req LocationPingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	update := models.LocationUpdate{
		DriverID: driverID,
		IsActive: req.IsActive,
		Location: models.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
	}
	if req.Timestamp != nil {
		update.Location.Timestamp = *req.Timestamp
	}

	err := h.locationUC.UpdateDriverLocation(c.Request().Context(), update)
	if errors.Is(err, location.ErrInvalidLocation) {
		return utils.BadRequestResponse(c, "Coordinates out of range")
	}
	if errors.Is(err, location.ErrDriverNotFound) {
		return utils.NotFoundResponse(c, "Driver not found")
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update driver location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location updated", nil)
}
