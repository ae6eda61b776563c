package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/driftlabs/model-resolver-api/internal/server/middleware"
	"github.com/driftlabs/model-resolver-api/internal/server/validator"
	"github.com/driftlabs/model-resolver-api/internal/store/cache"
	"github.com/driftlabs/model-resolver-api/internal/store/model"
	"github.com/driftlabs/model-resolver-api/pkg/api"
)

const resolutionCacheTTL = time.Minute

type resolveRequest struct {
	Provider     string `form:"provider" json:"provider" binding:"required"`
	Model        string `form:"model" json:"model" binding:"required"`
	AgentContext string `form:"agent_context" json:"agent_context"`
}

// HandleResolve resolves a provider/model pair into a concrete model
// descriptor. Unknown models yield a fallback descriptor rather than an
// error; only a missing provider id is a client failure.
func (h *Handler) HandleResolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	cacheKey := fmt.Sprintf("resolve:%s:%s:%s", req.Provider, req.Model, req.AgentContext)

	var res api.Resolution
	if err := h.cache.Get(c.Request.Context(), cacheKey, &res); err == nil {
		annotateRequestLog(c, res)
		c.JSON(http.StatusOK, res)
		return
	} else if err != cache.ErrMiss {
		h.logger.Warn("Resolution cache read failed", zap.Error(err))
	}

	start := time.Now()
	res = h.registry.Resolve(req.Provider, req.Model, req.AgentContext)
	latency := time.Since(start)

	if res.Model == nil {
		c.Error(api.BadRequestError("provider id must not be empty"))
		return
	}

	annotateRequestLog(c, res)

	if err := h.cache.Set(c.Request.Context(), cacheKey, res, resolutionCacheTTL); err != nil {
		h.logger.Warn("Resolution cache write failed", zap.Error(err))
	}

	h.ingestor.Log(&model.ResolutionLog{
		ID:        uuid.NewString(),
		Provider:  res.Model.Provider,
		ModelID:   res.Model.ID,
		BaseURL:   res.Model.BaseURL,
		API:       string(res.Model.API),
		Fallback:  res.Fallback,
		LatencyUS: latency.Microseconds(),
		CreatedAt: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, res)
}

func annotateRequestLog(c *gin.Context, res api.Resolution) {
	if res.Model == nil {
		return
	}
	c.Set(middleware.CtxProvider, res.Model.Provider)
	c.Set(middleware.CtxModel, res.Model.ID)
	c.Set(middleware.CtxFallback, res.Fallback)
}
