package server

import (
	"github.com/driftlabs/model-resolver-api/internal/server/middleware"
	v1 "github.com/driftlabs/model-resolver-api/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.ErrorHandler(s.logger))
	s.router.Use(middleware.Tracing(serviceName))

	handler := v1.NewHandler(s.registry, s.cache, s.ingestor, s.logger)

	// Health Check (Public)
	s.router.GET("/health", handler.Health)

	rl := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)

	api := s.router.Group("/v1")
	api.Use(middleware.Auth(s.repo, s.config.Server.APIKeys))
	api.Use(rl.Middleware())
	{
		api.GET("/models", handler.HandleListModels)
		api.GET("/resolve", handler.HandleResolve)

		analyticsHandler := v1.NewAnalyticsHandler(s.analytics)
		api.GET("/analytics/usage", analyticsHandler.GetUsage)
		api.GET("/analytics/recent", analyticsHandler.GetRecent)
	}
}
