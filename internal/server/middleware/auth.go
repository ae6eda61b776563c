package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/driftlabs/model-resolver-api/internal/store"
	"github.com/driftlabs/model-resolver-api/pkg/api"
)

// Auth checks for a valid Bearer token in the Authorization header. Static
// keys from configuration are accepted directly; any other token is hashed
// with SHA-256 and looked up in the key store. A nil repository with an
// empty static list disables authentication entirely.
func Auth(repo store.Repository, staticKeys []string) gin.HandlerFunc {
	staticMap := make(map[string]bool)
	for _, k := range staticKeys {
		staticMap[k] = true
	}

	return func(c *gin.Context) {
		if len(staticMap) == 0 && repo == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewProblem(http.StatusUnauthorized, "Unauthorized", "Missing Authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewProblem(http.StatusUnauthorized, "Unauthorized", "Invalid Authorization header format"))
			return
		}

		token := parts[1]

		if staticMap[token] {
			c.Next()
			return
		}

		if repo == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewProblem(http.StatusUnauthorized, "Unauthorized", "Invalid API key"))
			return
		}

		hash := sha256.Sum256([]byte(token))
		hashedHex := hex.EncodeToString(hash[:])

		key, err := repo.APIKeys().GetByHash(c.Request.Context(), hashedHex)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewProblem(http.StatusUnauthorized, "Unauthorized", "Invalid API key"))
			return
		}

		// Inject key into context for downstream use (logging)
		ctx := context.WithValue(c.Request.Context(), store.ContextKeyAPIKey, key)
		c.Request = c.Request.WithContext(ctx)

		// Update last used timestamp (async)
		go func() {
			_ = repo.APIKeys().UpdateUsage(context.Background(), key.ID)
		}()

		c.Next()
	}
}
