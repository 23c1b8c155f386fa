package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ravico/dinefinder/internal/availability"
	"github.com/ravico/dinefinder/internal/catalog"
	"github.com/ravico/dinefinder/internal/config"
	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/database"
	"github.com/ravico/dinefinder/internal/handlers"
	"github.com/ravico/dinefinder/internal/logging"
	"github.com/ravico/dinefinder/internal/metrics"
	appSignals "github.com/ravico/dinefinder/internal/signals"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Determine if we're in development mode
	isDev := os.Getenv("ENV") != "production"

	// Initialize logging
	logging.Initialize(isDev)

	logger := logging.GetLogger("main")

	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msg("Starting DineFinder")

	// Create context that's canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Application run failed")
	}
}

func run(ctx context.Context) error {
	logger := logging.GetLogger("main")

	// Get config file path from environment or use default
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "configs/dinefinder.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Str("config_path", configPath).Msg("Failed to load configuration")
		return err
	}

	// Set log level from configuration
	logging.SetLogLevel(cfg.Service.LogLevel)
	logger.Info().Str("log_level", cfg.Service.LogLevel).Msg("Log level set")

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.Catalog.StateFile), 0755); err != nil {
		logger.Error().Err(err).Str("path", filepath.Dir(cfg.Catalog.StateFile)).Msg("Failed to create data directory")
		return err
	}

	// Initialize the state store
	db, err := database.New(database.NewDefaultOptions(cfg.Catalog.StateFile))
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize database: %w", err)
		logger.Error().Err(wrappedErr).Str("db_path", cfg.Catalog.StateFile).Msg("Database initialization failed")
		return wrappedErr
	}
	defer db.Close()

	if err := db.MigrateDatabase(); err != nil {
		wrappedErr := fmt.Errorf("failed to initialize database schema: %w", err)
		logger.Error().Err(wrappedErr).Msg("Database schema initialization failed")
		return wrappedErr
	}

	catalogStore, err := database.NewCatalogStore(db)
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize catalog store: %w", err)
		logger.Error().Err(wrappedErr).Msg("Catalog store initialization failed")
		return wrappedErr
	}

	// Seed the catalog from the source file (runs only on first start)
	seeder := catalog.NewSeeder(catalogStore)
	if err := seeder.Seed(ctx, cfg.Catalog.SourceFile, false); err != nil {
		wrappedErr := fmt.Errorf("failed to seed catalog: %w", err)
		logger.Error().Err(wrappedErr).Msg("Catalog seeding failed")
		return wrappedErr
	}

	metrics.Register()

	// Parse the catalog into schedules
	loader := catalog.NewLoader(catalogStore, constants.WeekdayOrder, cfg.Hours.ClockLayouts)
	restaurants, err := loader.Load(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("failed to load catalog: %w", err)
		logger.Error().Err(wrappedErr).Msg("Catalog loading failed")
		return wrappedErr
	}

	session := availability.NewSession(restaurants, cfg.Query.DateLayouts, cfg.Query.TimeLayouts)
	logger.Info().Int("restaurants", session.Size()).Msg("Availability session ready")

	// Initialize handlers
	staticHandler, err := handlers.NewStaticHandler()
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize static handler: %w", err)
		logger.Error().Err(wrappedErr).Msg("Static handler initialization failed")
		return wrappedErr
	}

	baseHandler, err := handlers.NewBaseHandler(session, version)
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize base handler: %w", err)
		logger.Error().Err(wrappedErr).Msg("Base handler initialization failed")
		return wrappedErr
	}
	homeHandler := handlers.NewHomeHandler(baseHandler)
	apiHandler := handlers.NewAPIHandler(baseHandler)

	// Register routes
	staticHandler.RegisterRoutes()
	homeHandler.RegisterRoutes()
	apiHandler.RegisterRoutes()
	http.Handle("/metrics", promhttp.Handler())

	// Register handler for catalog reload requests
	appSignals.OnCatalogReloadRequested(func(ctx context.Context, data appSignals.CatalogReloadRequestedData) {
		signalLogger := logging.GetLogger("signal-catalog-reload")
		signalLogger.Info().Bool("force", data.Force).Msg("Catalog reload requested")

		if data.Force {
			if err := seeder.Seed(ctx, cfg.Catalog.SourceFile, true); err != nil {
				signalLogger.Error().Err(err).Msg("Failed to reseed catalog from source file")
				return
			}
		}

		reloaded, err := loader.Load(ctx)
		if err != nil {
			signalLogger.Error().Err(err).Msg("Failed to reload catalog")
			return
		}

		session.Swap(reloaded)
		appSignals.EmitCatalogReloaded(ctx, len(reloaded))
	}, "main-catalog-reload-handler")

	appSignals.OnCatalogReloaded(func(ctx context.Context, data appSignals.CatalogReloadedData) {
		signalLogger := logging.GetLogger("signal-catalog-reloaded")
		signalLogger.Info().Int("restaurants", data.Restaurants).Msg("Catalog reload complete")
	}, "main-catalog-reloaded-handler")

	// Start HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Service.Port),
	}

	go func() {
		logger.Info().Int("port", cfg.Service.Port).Msg("Starting web server")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Context cancelled, initiating shutdown sequence")

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		logger.Info().Msg("HTTP server shut down gracefully")
	}
	logger.Info().Msg("Shutdown complete")
	return nil
}
