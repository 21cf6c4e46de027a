package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/config"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/database"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/health"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/middleware"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/nats"
	nrpkg "github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/newrelic"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	communitygateway "github.com/usbtecnok/kaviar-v2-sub004/services/community/gateway"
	communityhandler "github.com/usbtecnok/kaviar-v2-sub004/services/community/handler"
	communityrepo "github.com/usbtecnok/kaviar-v2-sub004/services/community/repository"
	communityusecase "github.com/usbtecnok/kaviar-v2-sub004/services/community/usecase"
	dispatchgateway "github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/gateway"
	dispatchhandler "github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/handler"
	dispatchrepo "github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/repository"
	dispatchusecase "github.com/usbtecnok/kaviar-v2-sub004/services/dispatch/usecase"
	locationhandler "github.com/usbtecnok/kaviar-v2-sub004/services/location/handler"
	locationrepo "github.com/usbtecnok/kaviar-v2-sub004/services/location/repository"
	locationusecase "github.com/usbtecnok/kaviar-v2-sub004/services/location/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	communityRepo := communityrepo.NewCommunityRepository(configs, db)
	locationRepo := locationrepo.NewLocationRepository(db, redisClient)
	rideRepo := dispatchrepo.NewRideRepository(configs, db)
	confirmationRepo := dispatchrepo.NewConfirmationRepository(configs, db)

	// Initialize gateways
	communityGW := communitygateway.NewCommunityGW(natsClient)
	dispatchGW := dispatchgateway.NewDispatchGW(natsClient)

	// Initialize usecases. The community usecase doubles as the fence
	// resolver for driver location pings.
	policy := community.NewNeighborhoodPolicy(configs.Policy)
	communityUC := communityusecase.NewCommunityUC(configs, communityRepo, communityGW)
	locationUC := locationusecase.NewLocationUC(configs, locationRepo, communityUC)
	dispatchUC := dispatchusecase.NewDispatchUC(configs, rideRepo, confirmationRepo, communityRepo, locationUC, policy, dispatchGW)

	// Initialize handlers
	communityHandler := communityhandler.NewHandler(communityUC)
	locationHandler := locationhandler.NewHandler(locationUC)
	dispatchHandler := dispatchhandler.NewHandler(dispatchUC)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	communityHandler.RegisterRoutes(e, apiKeyMiddleware)
	locationHandler.RegisterRoutes(e, apiKeyMiddleware)
	dispatchHandler.RegisterRoutes(e, configs.JWT)

	// Background sweeps: community auto-activation evaluation and expired
	// confirmation collection share one ticker.
	sweepCtx, stopSweeps := context.WithCancel(context.Background())
	defer stopSweeps()
	if interval := configs.Dispatch.EvaluationIntervalSeconds; interval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(interval) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-sweepCtx.Done():
					return
				case <-ticker.C:
					if err := communityUC.EvaluateAll(sweepCtx); err != nil {
						logger.Error("community evaluation sweep failed", logger.Err(err))
					}
					if err := dispatchUC.SweepExpiredConfirmations(sweepCtx); err != nil {
						logger.Error("confirmation sweep failed", logger.Err(err))
					}
				}
			}
		}()
	} else {
		logger.Warn("background sweeps disabled",
			logger.Int("evaluation_interval_seconds", interval))
	}

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	stopSweeps()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
