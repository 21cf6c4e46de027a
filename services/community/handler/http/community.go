package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

// CommunityHandler handles HTTP requests for community administration
type CommunityHandler struct {
	communityUC community.CommunityUC
}

// NewCommunityHandler creates a new community HTTP handler
func NewCommunityHandler(communityUC community.CommunityUC) *CommunityHandler {
	return &CommunityHandler{
		communityUC: communityUC,
	}
}

// CreateCommunityRequest is the request body for community creation
type CreateCommunityRequest struct {
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	AutoActivation        bool              `json:"auto_activation"`
	MinActiveDrivers      int               `json:"min_active_drivers"`
	DeactivationThreshold int               `json:"deactivation_threshold"`
	CenterLat             *float64          `json:"center_lat"`
	CenterLng             *float64          `json:"center_lng"`
	RadiusMeters          *int              `json:"radius_meters"`
	Geofence              []models.GeoPoint `json:"geofence"`
}

// CreateCommunity handles POST /internal/communities
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	var req CreateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.communityUC.CreateCommunity(c.Request().Context(), &models.Community{
		Name:                  req.Name,
		Description:           req.Description,
		AutoActivation:        req.AutoActivation,
		MinActiveDrivers:      req.MinActiveDrivers,
		DeactivationThreshold: req.DeactivationThreshold,
		CenterLat:             req.CenterLat,
		CenterLng:             req.CenterLng,
		RadiusMeters:          req.RadiusMeters,
		Geofence:              req.Geofence,
	})
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Community created", created)
}

// GetCommunity handles GET /internal/communities/:id
func (h *CommunityHandler) GetCommunity(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	comm, err := h.communityUC.GetCommunity(c.Request().Context(), communityID)
	if errors.Is(err, community.ErrCommunityNotFound) {
		return utils.NotFoundResponse(c, "Community not found")
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get community")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Community retrieved", comm)
}

// UpdateGeometryRequest is the request body for fence updates
type UpdateGeometryRequest struct {
	Geofence     []models.GeoPoint `json:"geofence"`
	CenterLat    *float64          `json:"center_lat"`
	CenterLng    *float64          `json:"center_lng"`
	RadiusMeters *int              `json:"radius_meters"`
}

// UpdateGeometry handles PUT /internal/communities/:id/geometry
func (h *CommunityHandler) UpdateGeometry(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	var req UpdateGeometryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err = h.communityUC.UpdateGeometry(c.Request().Context(), communityID, req.Geofence, req.CenterLat, req.CenterLng, req.RadiusMeters)
	if errors.Is(err, community.ErrCommunityNotFound) {
		return utils.NotFoundResponse(c, "Community not found")
	}
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Community geometry updated", nil)
}

// ArchiveCommunity handles POST /internal/communities/:id/archive
func (h *CommunityHandler) ArchiveCommunity(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	err = h.communityUC.ArchiveCommunity(c.Request().Context(), communityID)
	if errors.Is(err, community.ErrCommunityNotFound) {
		return utils.NotFoundResponse(c, "Community not found")
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to archive community")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Community archived", nil)
}

// EvaluateCommunity handles POST /internal/communities/:id/evaluate
func (h *CommunityHandler) EvaluateCommunity(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	result, err := h.communityUC.Evaluate(c.Request().Context(), communityID)
	if errors.Is(err, community.ErrCommunityNotFound) {
		return utils.NotFoundResponse(c, "Community not found")
	}
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to evaluate community")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Community evaluated", result)
}

// GetStatusHistory handles GET /internal/communities/:id/history
func (h *CommunityHandler) GetStatusHistory(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	history, err := h.communityUC.GetStatusHistory(c.Request().Context(), communityID)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get status history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status history retrieved", history)
}
