package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/lapakin/lapakin/internal/pkg/config"
	"github.com/lapakin/lapakin/internal/pkg/health"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/middleware"
	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	"github.com/lapakin/lapakin/internal/pkg/server"
	wspkg "github.com/lapakin/lapakin/internal/pkg/websocket"
	"github.com/lapakin/lapakin/services/portal/handler"
	"github.com/lapakin/lapakin/services/portal/usecase"
)

func main() {
	appName := "portal-service"
	configs := config.InitConfig("config/portal.env")

	// New Relic first so the logger can forward through it
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	wsManager := wspkg.NewManager(configs.JWT)
	portalUC := usecase.NewPortalUC()
	portalHandler := handler.NewHandler(configs, portalUC, wsManager, natsClient, nrApp)

	if err := portalHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to start event consumers", logger.Err(err))
	}

	e := echo.New()
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrecho.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	portalHandler.RegisterRoutes(e)

	// Consumers stop first so no broadcast races the socket teardown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		portalHandler.StopConsumers()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	if nrApp != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
