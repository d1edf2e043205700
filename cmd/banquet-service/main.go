package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/admin"
	"github.com/mobilebanquet/banquet-service/internal/blob"
	"github.com/mobilebanquet/banquet-service/internal/config"
	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/transport"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "banquet-service").Logger()

	log.Info().Msg("Banquet service starting...")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	store, err := docstore.NewPostgres(context.Background(), cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer store.Close()

	local := blob.NewLocalStore(cfg.Blob.UploadDir, "/uploads")

	deps := transport.Deps{
		Store:     store,
		Auth:      admin.NewAuth(cfg.Admin.PasswordHash),
		Blobs:     local,
		UploadDir: cfg.Blob.UploadDir,
	}
	if cfg.Blob.S3Bucket != "" {
		s3Store, err := blob.NewS3Store(context.Background(), cfg.Blob.S3Region, cfg.Blob.S3Bucket, cfg.Blob.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 blob store")
		}
		deps.Blobs = s3Store
		deps.BlobFallback = local
		log.Info().Str("bucket", cfg.Blob.S3Bucket).Msg("Uploads go to S3 with local fallback")
	} else {
		log.Info().Str("dir", cfg.Blob.UploadDir).Msg("Uploads go to the local directory")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      transport.NewRouter(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
