package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VoidMesh/terrainpainter/internal/api"
	"github.com/VoidMesh/terrainpainter/internal/catalog"
	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	logging.Configure(os.Stderr, logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	log := logging.GetLogger()
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Load the map config served by the render endpoints
	mapConfig, err := cfg.Render.LoadMap()
	if err != nil {
		log.Fatal("Failed to load map config", "path", cfg.Render.MapConfigPath, "error", err)
	}
	log.Debug("Map config loaded", "width", mapConfig.Width, "height", mapConfig.Height, "seed", mapConfig.Seed)

	// Initialize the render catalog
	var store api.RenderStore
	if cfg.Database.Path != "" {
		catalogStore, err := catalog.Open(cfg.Database)
		if err != nil {
			log.Fatal("Failed to open render catalog", "error", err)
		}
		defer catalogStore.Close()
		store = catalogStore
	} else {
		log.Warn("DB_PATH is empty, render catalog disabled")
	}

	// Initialize API handlers
	handler, err := api.NewHandler(mapConfig, store, cfg.Server)
	if err != nil {
		log.Fatal("Failed to initialize API handlers", "error", err)
	}
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting terrainpainter server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}
