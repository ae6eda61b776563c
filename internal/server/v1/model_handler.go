package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driftlabs/model-resolver-api/pkg/api"
	"github.com/driftlabs/model-resolver-api/pkg/schema"
)

// HandleListModels returns the merged model catalog, optionally filtered by
// provider or model id.
func (h *Handler) HandleListModels(c *gin.Context) {
	filter := api.ModelFilter{
		Provider: c.Query("provider"),
		ID:       c.Query("id"),
	}

	snap := h.registry.Snapshot()

	models := make([]schema.ResolvedModel, 0, len(snap.Models))
	for _, m := range snap.Models {
		if filter.Provider != "" && m.Provider != filter.Provider {
			continue
		}
		if filter.ID != "" && m.ID != filter.ID {
			continue
		}
		models = append(models, m)
	}

	c.JSON(http.StatusOK, api.ModelList{
		Object: "list",
		Data:   models,
	})
}
