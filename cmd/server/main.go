package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karriarsparet-gateway/internal/api/routes"
	"karriarsparet-gateway/internal/background"
	"karriarsparet-gateway/internal/barometer"
	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/codes"
	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/internal/session"
	"karriarsparet-gateway/pkg/utils"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Karriarsparet gateway")

	// Wire the component graph
	redisClient := utils.NewRedisClient(cfg)
	defer redisClient.Close()

	client := catalog.NewClient(cfg)
	cached := catalog.NewCachedCatalog(client, redisClient, cfg)
	regionResolver := codes.NewRegionResolver(codes.RegionTable)
	detailer := catalog.NewDetailer(
		regionResolver,
		codes.NewMunicipalityResolver(codes.MunicipalityTable),
		cfg.Barometer.TopMatches,
	)
	forecast := barometer.NewResolver(client, cfg.Barometer.TopMatches)
	sessions := session.NewStore(redisClient, cfg)

	// Warm the reference caches in the background
	warmer := background.NewWarmer(cached, cfg)
	warmer.Start(context.Background())

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	routes.SetupRoutes(e, routes.Dependencies{
		Config:   cfg,
		Client:   client,
		Cached:   cached,
		Detailer: detailer,
		Regions:  regionResolver,
		Forecast: forecast,
		Sessions: sessions,
		Redis:    redisClient,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		warmer.Stop()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
