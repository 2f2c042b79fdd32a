package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer runs the echo server and drains it on SIGINT/SIGTERM.
// In-flight kiosk requests get the shutdown window to finish; the
// session store keeps anything that does not.
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

// Start serves until a termination signal arrives, then drains.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the server within the shutdown window.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type shutdownFunc struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager closes the process's long-lived components once the
// HTTP server has drained. Components stop in reverse registration
// order, consumers before the clients they publish through.
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []shutdownFunc
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named component to stop during shutdown.
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, shutdownFunc{name: name, fn: fn})
}

// Shutdown stops every registered component, continuing past failures
// so one stuck component cannot leave the rest dangling.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Stopping components", logger.Int("count", len(sm.components)))

	for i := len(sm.components) - 1; i >= 0; i-- {
		component := sm.components[i]
		if err := component.fn(ctx); err != nil {
			sm.logger.Error("Component shutdown failed",
				logger.String("component", component.name),
				logger.Err(err))
			continue
		}
		sm.logger.Info("Component stopped", logger.String("component", component.name))
	}
	return nil
}
