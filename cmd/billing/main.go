package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/lapakin/lapakin/internal/pkg/config"
	"github.com/lapakin/lapakin/internal/pkg/database"
	"github.com/lapakin/lapakin/internal/pkg/health"
	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/middleware"
	natspkg "github.com/lapakin/lapakin/internal/pkg/nats"
	nrpkg "github.com/lapakin/lapakin/internal/pkg/newrelic"
	nsqpkg "github.com/lapakin/lapakin/internal/pkg/nsq"
	"github.com/lapakin/lapakin/internal/pkg/server"
	"github.com/lapakin/lapakin/services/billing/gateway"
	"github.com/lapakin/lapakin/services/billing/handler"
	"github.com/lapakin/lapakin/services/billing/repository"
	"github.com/lapakin/lapakin/services/billing/usecase"
)

func main() {
	appName := "billing-service"
	configs := config.InitConfig("config/billing.env")

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

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// The billing service owns the streams it publishes to
	for _, streamConfig := range natspkg.DefaultStreamConfigs() {
		if err := natsClient.EnsureStream(streamConfig); err != nil {
			zapLogger.Fatal("Failed to ensure JetStream stream",
				logger.String("stream", streamConfig.Name),
				logger.Err(err))
		}
	}

	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	billingRepo := repository.NewBillingRepo(configs, postgresClient.GetDB(), redisClient)
	billingGW := gateway.NewBillingGW(configs, natsClient, nsqProducer)
	billingUC := usecase.NewBillingUC(configs, billingRepo, billingGW)
	billingHandler := handler.NewHandler(configs, billingUC)

	e := echo.New()
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrecho.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	billingHandler.RegisterRoutes(e, redisClient)

	// Infrastructure teardown runs after the HTTP server drains
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		nsqProducer.Stop()
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
