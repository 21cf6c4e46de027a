package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/database"
	natspkg "github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/nats"
)

// Checker verifies a single dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// NewPostgresChecker checks the Postgres connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping()
	})
}

// NewRedisChecker checks the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker checks the NATS connection
func NewNATSChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return context.DeadlineExceeded
		}
		return nil
	})
}

// Service aggregates dependency checkers
type Service struct {
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all checkers and reports per-dependency status
func (s *Service) Check(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			results[name] = "unhealthy: " + err.Error()
			healthy = false
		} else {
			results[name] = "ok"
		}
	}

	return results, healthy
}

// RegisterEndpoints registers the health check endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	// Basic liveness for load balancers
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"version":   version,
			"timestamp": time.Now(),
		})
	})

	// Readiness with dependency checks
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results, healthy := svc.Check(ctx)
		status := http.StatusOK
		statusText := "ok"
		if !healthy {
			status = http.StatusServiceUnavailable
			statusText = "unhealthy"
		}

		return c.JSON(status, map[string]interface{}{
			"status":       statusText,
			"service":      serviceName,
			"version":      version,
			"dependencies": results,
			"timestamp":    time.Now(),
		})
	})
}
