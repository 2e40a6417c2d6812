package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gift-kiosk/internal/auth"
	"gift-kiosk/internal/card"
	"gift-kiosk/internal/config"
	"gift-kiosk/internal/handler"
	"gift-kiosk/internal/repository"
	"gift-kiosk/internal/router"
	"gift-kiosk/internal/service"
	"gift-kiosk/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load a local .env if present; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting gift-kiosk API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize stores
	cardRepo := repository.NewCardRepository(logger)
	priceRepo := repository.NewGlobalPriceRepository(logger)

	// Preload pre-issued codes if configured, via S3 with local fallback
	if cfg.Seed.Enabled {
		fileLoader := card.NewFileLoader(logger)
		var seedLoader card.Loader = fileLoader

		if cfg.S3.Enabled {
			s3Loader, err := card.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				seedLoader = card.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
			}
		}

		seeder := card.NewSeeder(seedLoader, cardRepo, logger)
		registered, err := seeder.Seed(ctx, cfg.Seed.Files)
		if err != nil {
			return fmt.Errorf("failed to seed gift-card codes: %w", err)
		}
		logger.Info().Int("registered", registered).Msg("seed codes registered")
	}

	// Initialize sessions and the admin gate
	sessions := session.NewStore(time.Duration(cfg.Session.TTL)*time.Second, logger)
	gate := auth.NewGate(cfg.Admin.Username, cfg.Admin.Password, logger)

	// Initialize services
	cardService := service.NewCardService(cardRepo, priceRepo, logger)
	adminService := service.NewAdminService(cardRepo, priceRepo, logger)

	// Initialize HTTP handlers
	cardHandler := handler.NewCardHandler(cardService, logger)
	adminHandler := handler.NewAdminHandler(adminService, gate, sessions, logger)

	// Initialize router
	mux := router.New(cardHandler, adminHandler, sessions, gate, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
