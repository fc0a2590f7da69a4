package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lapakin/lapakin/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// Start starts the server and blocks until an interrupt or SIGTERM arrives,
// then shuts down gracefully.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Ctrl+C from a terminal, SIGTERM from Kubernetes or Docker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager collects cleanup functions for infrastructure clients and
// runs them once the HTTP server has drained.
type ShutdownManager struct {
	logger    *logger.ZapLogger
	mu        sync.Mutex
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown.
// Nil functions are ignored.
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	if fn == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions in registration order.
// A failing or panicking component does not stop the remaining ones.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	functions := sm.functions
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	for i, fn := range functions {
		sm.runComponent(ctx, i, fn)
	}

	sm.logger.Info("All components shutdown completed")
	return nil
}

func (sm *ShutdownManager) runComponent(ctx context.Context, index int, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			sm.logger.Error("Panic during component shutdown",
				logger.Int("component", index),
				logger.Any("panic", r))
		}
	}()

	if err := fn(ctx); err != nil {
		sm.logger.Error("Error during component shutdown",
			logger.Int("component", index),
			logger.Err(err))
	}
}
