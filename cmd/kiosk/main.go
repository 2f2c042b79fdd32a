package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/config"
	"github.com/strikelab/punchkiosk/internal/pkg/database"
	"github.com/strikelab/punchkiosk/internal/pkg/health"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/middleware"
	nsqpkg "github.com/strikelab/punchkiosk/internal/pkg/nsq"
	"github.com/strikelab/punchkiosk/internal/pkg/server"
	kioskGateway "github.com/strikelab/punchkiosk/services/kiosk/gateway"
	nsqHandler "github.com/strikelab/punchkiosk/services/kiosk/handler/nsq"
	wsHandler "github.com/strikelab/punchkiosk/services/kiosk/handler/websocket"
	kioskUsecase "github.com/strikelab/punchkiosk/services/kiosk/usecase"
	"github.com/strikelab/punchkiosk/services/session/gateway"
	httpHandler "github.com/strikelab/punchkiosk/services/session/handler/http"
	"github.com/strikelab/punchkiosk/services/session/repository"
	"github.com/strikelab/punchkiosk/services/session/usecase"
)

func main() {
	appName := "punchkiosk"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/kiosk.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

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

	// Initialize NSQ producer for the admin punch feed
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repository
	sessionRepo := repository.NewSessionRepository(postgresClient.GetDB())

	// Initialize gateways
	providerGW := gateway.NewSumUpGateway(configs.SumUp, zapLogger)
	machineGW := gateway.NewMachineGateway(configs.Machine, zapLogger)
	busGW := gateway.NewBusGateway(redisClient, nsqProducer, zapLogger)
	notificationGW := kioskGateway.NewNotificationGateway(redisClient, zapLogger)

	// Initialize use cases
	sessionUC := usecase.NewSessionUC(configs, sessionRepo, providerGW, machineGW, busGW)
	kioskUC := kioskUsecase.NewKioskUC(configs, sessionUC, notificationGW)

	// Handlers for HTTP
	sessionHandler := httpHandler.NewSessionHandler(sessionUC)

	// Handlers for WebSocket
	kioskWS := wsHandler.NewKioskHandler(kioskUC)
	adminFeed := wsHandler.NewAdminFeedManager(configs.JWT)

	// Bridge the punch feed topic onto the admin dashboards
	punchFeed, err := nsqHandler.NewPunchFeedHandler(configs.NSQ, adminFeed)
	if err != nil {
		zapLogger.Fatal("Failed to initialize punch feed consumer", logger.Err(err))
	}
	defer punchFeed.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints; readiness pings every hard dependency
	health.RegisterHealthEndpoints(e, appName, map[string]health.CheckFunc{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
		"nsq": func(context.Context) error {
			return nsqProducer.Ping()
		},
	})

	// Register service routes
	sessionHandler.RegisterRoutes(e, configs.JWT)
	e.GET("/ws/kiosk", kioskWS.HandleKiosk)
	e.GET("/ws/admin", adminFeed.HandleAdmin)

	// Register component shutdown; stopped in reverse order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("nsq-producer", func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownManager.Register("punch-feed", func(context.Context) error {
		punchFeed.Stop()
		return nil
	})

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)
}
