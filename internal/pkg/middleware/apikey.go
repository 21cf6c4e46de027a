package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service communication
type APIKeyMiddleware struct {
	serviceKeys map[string]string
}

// NewAPIKeyMiddleware creates a new API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		serviceKeys: map[string]string{
			"admin-service":    cfg.AdminService,
			"driver-service":   cfg.DriverService,
			"dispatch-service": cfg.DispatchService,
		},
	}
}

// Handler returns a middleware allowing only the named services
func (m *APIKeyMiddleware) Handler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				expected := m.serviceKeys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
