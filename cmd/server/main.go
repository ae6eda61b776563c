package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/driftlabs/model-resolver-api/cmd"
	"github.com/driftlabs/model-resolver-api/internal/analytics"
	"github.com/driftlabs/model-resolver-api/internal/catalog"
	"github.com/driftlabs/model-resolver-api/internal/config"
	"github.com/driftlabs/model-resolver-api/internal/core/services"
	"github.com/driftlabs/model-resolver-api/internal/discovery"
	"github.com/driftlabs/model-resolver-api/internal/logger"
	"github.com/driftlabs/model-resolver-api/internal/platform/otel"
	"github.com/driftlabs/model-resolver-api/internal/server"
	"github.com/driftlabs/model-resolver-api/internal/store/cache"
	"github.com/driftlabs/model-resolver-api/internal/store/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Initialize(cfg.Server.Env)
	defer logger.Sync()
	log := logger.Get()

	go cmd.CheckForUpdates()

	shutdownTracer, err := otel.InitTracer("model-resolver-api", log, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	repo, err := sqlite.NewStorage(cfg.Store.DSN)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		_ = repo.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ingestor := analytics.NewIngestor(log, repo)
	ingestor.Start(ctx)
	defer ingestor.Stop()

	registry := services.NewRegistry(catalog.Builtin(), cfg.Models)

	if cfg.Models.BedrockDiscovery.Enabled {
		disc, err := discovery.New(ctx, cfg.Models.BedrockDiscovery, log)
		if err != nil {
			log.Error("Bedrock discovery unavailable", zap.Error(err))
		} else {
			go disc.Run(ctx, cfg.Models, registry)
		}
	}

	var resolutionCache cache.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
			resolutionCache = cache.NewMemoryCache()
		} else {
			resolutionCache = redisCache
		}
	} else {
		resolutionCache = cache.NewMemoryCache()
	}

	srv := server.New(cfg, log, registry, repo, resolutionCache, ingestor, analytics.NewService(repo))

	log.Info("Starting model resolver API",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		log.Error("Server failed", zap.Error(err))
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	if err := shutdownTracer(context.Background()); err != nil {
		log.Warn("Tracer shutdown failed", zap.Error(err))
	}
}
