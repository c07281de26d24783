package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/blog-publisher-api/internal/api"
	"github.com/blog-publisher-api/internal/authors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/service"
	"github.com/blog-publisher-api/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// The logger depends on configuration, so fall back to defaults here
		log := logger.New(config.LogConfig{Level: "info"})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info().Msg("Starting blog publisher API server...")

	// Load the author directory
	directory, err := loadAuthors(cfg.Authors)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load author directory")
	}
	log.Info().Strs("authors", directory.IDs()).Str("default", directory.DefaultID()).Msg("Author directory loaded")

	// Initialize repositories
	repos := repository.New(cfg.Storage, cfg.Publish.DuplicatePolicy)

	// Initialize services
	services := service.NewServices(repos, directory, cfg, log)

	// Start background job processor
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go services.Job.StartProcessor(ctx)
	log.Info().Msg("Background job processor started")

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		logStartup(log, cfg)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop job processor once no request can enqueue more work
	stop()
	services.Job.StopProcessor()

	log.Info().Msg("Server exited gracefully")
}

func loadAuthors(cfg config.AuthorsConfig) (*authors.Directory, error) {
	if cfg.File == "" {
		return authors.Builtin(), nil
	}
	return authors.LoadFile(cfg.File, cfg.DefaultID)
}

func logStartup(log zerolog.Logger, cfg *config.Config) {
	log.Info().
		Str("port", cfg.Server.Port).
		Str("site_root", cfg.Storage.SiteRoot).
		Str("articles_dir", cfg.Storage.ArticlesDir).
		Str("data_dir", cfg.Storage.DataDir).
		Str("images_dir", cfg.Storage.ImagesDir).
		Str("duplicate_policy", cfg.Publish.DuplicatePolicy).
		Str("content_policy", cfg.Publish.ContentPolicy).
		Bool("serve_static", cfg.Server.ServeStatic).
		Msg("Server listening")
}
