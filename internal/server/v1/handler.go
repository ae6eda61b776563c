package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driftlabs/model-resolver-api/internal/analytics"
	"github.com/driftlabs/model-resolver-api/internal/core/services"
	"github.com/driftlabs/model-resolver-api/internal/store/cache"
)

// Handler serves the v1 resolution API.
type Handler struct {
	registry *services.Registry
	cache    cache.CacheService
	ingestor analytics.Ingestor
	logger   *zap.Logger
}

func NewHandler(registry *services.Registry, c cache.CacheService, ingestor analytics.Ingestor, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		cache:    c,
		ingestor: ingestor,
		logger:   logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
