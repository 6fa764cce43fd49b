package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Jayem09/coduxa-sub002/internal/pkg/config"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/database"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/health"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/logger"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/middleware"
	nsqpkg "github.com/Jayem09/coduxa-sub002/internal/pkg/nsq"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/server"
	"github.com/Jayem09/coduxa-sub002/services/credits/gateway"
	"github.com/Jayem09/coduxa-sub002/services/credits/handler"
	"github.com/Jayem09/coduxa-sub002/services/credits/repository"
	"github.com/Jayem09/coduxa-sub002/services/credits/usecase"
)

func main() {
	appName := "credits-service"
	configs := config.InitConfig(".env")

	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client when enabled
	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
	}

	// Initialize NSQ producer when enabled
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer producer.Stop()
	}

	// Initialize repository
	creditsRepo := repository.NewCreditsRepository(postgresClient.GetDB())

	// Initialize gateway
	xenditClient := gateway.NewXenditClient(configs.Xendit)
	creditsGW := gateway.NewCreditsGW(xenditClient, producer, configs.NSQ.Topic)

	// Initialize use case
	creditsUC := usecase.NewCreditsUC(configs, creditsRepo, creditsGW, redisClient, appLogger)

	// Initialize handler
	creditsHandler := handler.NewCreditsHandler(creditsUC, configs, appLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(echomw.Recover())

	if configs.Server.FrontendURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{configs.Server.FrontendURL},
		}))
	}

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	creditsHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped unexpectedly")
	}
}
