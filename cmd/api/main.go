package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogpress/blog-backend/internal/api"
	"github.com/blogpress/blog-backend/internal/core/ports"
	"github.com/blogpress/blog-backend/internal/infrastructure/config"
	mongodb "github.com/blogpress/blog-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/blogpress/blog-backend/internal/infrastructure/db/redis"
	"github.com/blogpress/blog-backend/internal/infrastructure/storage"
	"github.com/blogpress/blog-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("upload backend init failed")
	}

	e := api.NewRouter(db, rdb, uploader, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("upload_backend", cfg.Upload.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// newUploader selects the cover-image backend once at startup.
func newUploader(ctx context.Context, cfg *config.Config) (ports.Uploader, error) {
	if cfg.Upload.Backend == "s3" {
		return storage.NewS3Store(ctx, storage.S3Config{
			Region:    cfg.Upload.S3.Region,
			Bucket:    cfg.Upload.S3.Bucket,
			Folder:    cfg.Upload.S3.Folder,
			AccessKey: cfg.Upload.S3.AccessKey,
			SecretKey: cfg.Upload.S3.SecretKey,
			Endpoint:  cfg.Upload.S3.Endpoint,
			PublicURL: cfg.Upload.S3.PublicURL,
		})
	}
	return storage.NewLocalStore(cfg.Upload.Dir, "/uploads")
}
