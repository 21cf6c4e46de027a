package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	httpHandler "github.com/usbtecnok/kaviar-v2-sub004/services/community/handler/http"
)

// Handler combines all handlers for the community service
type Handler struct {
	communityHTTP *httpHandler.CommunityHandler
}

// NewHandler creates a new combined handler
func NewHandler(communityUC community.CommunityUC) *Handler {
	return &Handler{
		communityHTTP: httpHandler.NewCommunityHandler(communityUC),
	}
}

// RegisterRoutes registers all HTTP routes. The community surface is
// admin-only and sits behind the service API key.
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	internal := e.Group("/internal", apiKeyMiddleware.Handler("admin-service"))

	communities := internal.Group("/communities")
	communities.POST("", h.communityHTTP.CreateCommunity)
	communities.GET("/:id", h.communityHTTP.GetCommunity)
	communities.PUT("/:id/geometry", h.communityHTTP.UpdateGeometry)
	communities.POST("/:id/archive", h.communityHTTP.ArchiveCommunity)
	communities.POST("/:id/evaluate", h.communityHTTP.EvaluateCommunity)
	communities.GET("/:id/history", h.communityHTTP.GetStatusHistory)
}
