package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// DispatchHandler handles HTTP requests for ride dispatch
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// BlockedResponse is returned for terminal dispatch rejections
type BlockedResponse struct {
	Success bool                   `json:"success"`
	Outcome models.DispatchOutcome `json:"outcome"`
	Error   string                 `json:"error"`
}

// RequestRide handles POST /v1/rides. The passenger identity comes from the
// JWT, never from the body.
func (h *DispatchHandler) RequestRide(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Missing authenticated user")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.PassengerID = userID.String()

	result, err := h.dispatchUC.RequestRide(c.Request().Context(), req)
	if err != nil {
		return h.mapDispatchError(c, err)
	}

	if result.RequiresConfirmation {
		// Pending, not created: the token carries the passenger's decision.
		return c.JSON(http.StatusAccepted, result)
	}
	return c.JSON(http.StatusCreated, result)
}

// GetRide handles GET /v1/rides/:rideID
func (h *DispatchHandler) GetRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.dispatchUC.GetRide(c.Request().Context(), rideID)
	if errors.Is(err, dispatch.ErrRideNotFound) {
		return utils.NotFoundResponse(c, "Ride not found")
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get ride")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if ok && ride.PassengerID != userID {
		return utils.NotFoundResponse(c, "Ride not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

func (h *DispatchHandler) mapDispatchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrNoCommunityAssigned),
		errors.Is(err, dispatch.ErrCommunityInactive),
		errors.Is(err, dispatch.ErrNoDriversAvailable),
		errors.Is(err, dispatch.ErrSensitiveFallbackUnavailable):
		return c.JSON(http.StatusUnprocessableEntity, BlockedResponse{
			Success: false,
			Outcome: models.OutcomeBlocked,
			Error:   err.Error(),
		})
	case errors.Is(err, dispatch.ErrTokenNotFound), errors.Is(err, dispatch.ErrTokenExpired):
		return c.JSON(http.StatusGone, BlockedResponse{
			Success: false,
			Outcome: models.OutcomeBlocked,
			Error:   err.Error(),
		})
	case errors.Is(err, dispatch.ErrTokenOwnership):
		return utils.ErrorResponseHandler(c, http.StatusForbidden, err.Error())
	default:
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to process ride request")
	}
}
