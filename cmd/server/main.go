package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/power-league-website/internal/api"
	"github.com/dom/power-league-website/internal/config"
	"github.com/dom/power-league-website/internal/repository"
	"github.com/dom/power-league-website/internal/repository/postgres"
	"github.com/dom/power-league-website/internal/repository/sanity"
	"github.com/dom/power-league-website/internal/service"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg)

	// Initialize repositories
	repos, err := newRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.ContentBackend).Msg("failed to initialize content source")
	}

	// Initialize services
	services := service.NewServices(repos, cfg, nil, log.Logger)
	if !services.WebhookAuth.Enabled() {
		log.Info().Msg("REVALIDATE_SECRET not set, revalidation webhook disabled")
	}

	// Initialize router
	router, err := api.NewRouter(services, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ContentTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.ContentBackend).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newRepositories(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.ContentBackend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepositories(db, log.Logger), nil
	default:
		client := sanity.NewClient(sanity.Config{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			APIVersion: cfg.SanityAPIVersion,
			Token:      cfg.SanityToken,
			UseCDN:     cfg.SanityUseCDN,
			BaseURL:    cfg.SanityBaseURL,
			Timeout:    cfg.ContentTimeout,
		})
		return sanity.NewRepositories(client, log.Logger), nil
	}
}
