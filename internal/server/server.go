package server

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driftlabs/model-resolver-api/internal/analytics"
	"github.com/driftlabs/model-resolver-api/internal/config"
	"github.com/driftlabs/model-resolver-api/internal/core/services"
	"github.com/driftlabs/model-resolver-api/internal/server/middleware"
	"github.com/driftlabs/model-resolver-api/internal/server/validator"
	"github.com/driftlabs/model-resolver-api/internal/store"
	"github.com/driftlabs/model-resolver-api/internal/store/cache"
)

const serviceName = "model-resolver-api"

type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    *zap.Logger
	registry  *services.Registry
	cache     cache.CacheService
	ingestor  analytics.Ingestor
	analytics analytics.Service
	repo      store.Repository
}

func New(cfg *config.Config, logger *zap.Logger, registry *services.Registry, repo store.Repository, c cache.CacheService, ingestor analytics.Ingestor, stats analytics.Service) *Server {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validator.InitValidator()

	engine := gin.New()

	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(middleware.Logger(logger))

	s := &Server{
		router:    engine,
		config:    cfg,
		logger:    logger,
		registry:  registry,
		cache:     c,
		ingestor:  ingestor,
		analytics: stats,
		repo:      repo,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              ":" + s.config.Server.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
