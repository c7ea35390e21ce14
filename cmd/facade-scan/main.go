package main

import (
	"fmt"
	"os"

	"facade-scan/internal/client"
	"facade-scan/internal/config"
	"facade-scan/internal/db"
	httphandler "facade-scan/internal/http"
	"facade-scan/internal/logger"
	"facade-scan/internal/notify"
	"facade-scan/internal/repository"
	"facade-scan/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	var notifier notify.Notifier = notify.NewLogNotifier(appLogger)
	if len(cfg.Notify.URLs) > 0 {
		push, err := notify.NewPushNotifier(cfg.Notify.URLs, appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to configure push notifications")
		}
		notifier = notify.NewMultiNotifier(notifier, push)
	}

	buildingRepo := repository.NewBuildingRepository(database)
	windowRepo := repository.NewWindowRepository(database)
	sessionRepo := repository.NewDetectionSessionRepository(database)

	buildingService := service.NewBuildingService(buildingRepo, windowRepo, notifier)
	detector := service.NewSyntheticDetector(cfg.Detection.MinWindows, cfg.Detection.MaxWindows)
	detectionService := service.NewDetectionService(
		buildingService, sessionRepo, windowRepo, detector, cfg.Detection.Delay, notifier, appLogger,
	)
	statsService := service.NewStatsService(buildingRepo, windowRepo, sessionRepo)

	geocoder := client.NewGeocoderClient(cfg)

	handler := httphandler.NewHandler(buildingService, detectionService, statsService, geocoder, appLogger)
	router := httphandler.NewRouter(handler, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting facade-scan service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
