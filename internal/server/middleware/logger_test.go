package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_AnnotatesResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/v1/resolve", func(c *gin.Context) {
		c.Set(CtxProvider, "acme")
		c.Set(CtxModel, "acme-unreleased")
		c.Set(CtxFallback, true)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/resolve?provider=acme&model=acme-unreleased", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()

	assert.Equal(t, "acme", fields["provider"])
	assert.Equal(t, "acme-unreleased", fields["model"])
	assert.Equal(t, true, fields["fallback"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "/v1/resolve?provider=acme&model=acme-unreleased", fields["path"])
}

func TestLogger_SkipsResolutionFieldsWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()

	_, hasProvider := fields["provider"]
	assert.False(t, hasProvider)
}
