package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
	httpHandler "github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/handler/http"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
	}
}

// RegisterRoutes registers all HTTP routes. The passenger surface is
// JWT-authenticated.
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	rides := e.Group("/v1/rides", middleware.JWTAuthMiddleware(jwtConfig))
	rides.POST("", h.dispatchHTTP.RequestRide)
	rides.GET("/:rideID", h.dispatchHTTP.GetRide)
}
