package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "merge", string(cfg.Models.Mode))
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadConfig_APIKeyResolution(t *testing.T) {
	t.Setenv("TEST_RESOLVER_KEY", "sk-test-12345")

	configContent := `
models:
  mode: merge
  providers:
    test-provider:
      base_url: "https://api.example.com/v1"
      api_key: "ENV:TEST_RESOLVER_KEY"
`
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))

	cwd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	p, ok := cfg.Models.Providers["test-provider"]
	assert.True(t, ok)
	assert.Equal(t, "sk-test-12345", p.APIKey)
}

func TestLoadConfig_MissingBaseURLRejected(t *testing.T) {
	configContent := `
models:
  providers:
    broken:
      api_key: "sk-anything"
`
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))

	cwd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	_, err = LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
