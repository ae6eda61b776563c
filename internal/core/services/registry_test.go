package services

import (
	"testing"

	"github.com/driftlabs/model-resolver-api/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtin = map[string]schema.ProviderConfig{
	"anthropic": {
		BaseURL: "https://api.anthropic.com",
		API:     schema.DialectAnthropicMessages,
		Auth:    schema.AuthAPIKey,
		Models:  []schema.ModelDefinition{{ID: "claude-sonnet"}},
	},
}

func TestMergeProviders_MergeOverlaysFields(t *testing.T) {
	configured := map[string]schema.ProviderConfig{
		"anthropic": {BaseURL: "http://proxy.local"},
	}

	out := MergeProviders(builtin, configured, schema.ModeMerge)

	p := out["anthropic"]
	assert.Equal(t, "http://proxy.local", p.BaseURL)
	// Unset fields inherit the built-in values.
	assert.Equal(t, schema.DialectAnthropicMessages, p.API)
	assert.Equal(t, schema.AuthAPIKey, p.Auth)
	assert.Len(t, p.Models, 1)
}

func TestMergeProviders_ReplaceWinsOutright(t *testing.T) {
	configured := map[string]schema.ProviderConfig{
		"anthropic": {BaseURL: "http://proxy.local"},
	}

	out := MergeProviders(builtin, configured, schema.ModeReplace)

	p := out["anthropic"]
	assert.Equal(t, "http://proxy.local", p.BaseURL)
	assert.Empty(t, p.API)
	assert.Empty(t, p.Models)
}

func TestMergeProviders_KeepsDisjointKeys(t *testing.T) {
	configured := map[string]schema.ProviderConfig{
		"local": {BaseURL: "http://localhost:11434"},
	}

	out := MergeProviders(builtin, configured, schema.ModeMerge)

	assert.Len(t, out, 2)
	assert.Equal(t, "https://api.anthropic.com", out["anthropic"].BaseURL)
	assert.Equal(t, "http://localhost:11434", out["local"].BaseURL)
}

func TestRegistry_PublishSwapsSnapshot(t *testing.T) {
	cfg := schema.ModelsConfig{
		Providers: map[string]schema.ProviderConfig{
			"alpha": {
				BaseURL: "http://alpha.local",
				Models:  []schema.ModelDefinition{{ID: "alpha-model"}},
			},
		},
	}
	reg := NewRegistry(nil, cfg)

	first := reg.Snapshot()
	require.Len(t, first.Models, 1)

	discovered := map[string]schema.ProviderConfig{
		"bedrock": {
			BaseURL: "https://bedrock-runtime.us-east-1.amazonaws.com",
			Auth:    schema.AuthAWSSDK,
			Models:  []schema.ModelDefinition{{ID: "anthropic.claude-sonnet"}},
		},
	}
	reg.Publish(cfg, discovered)

	second := reg.Snapshot()
	assert.Len(t, second.Models, 2)

	// The previously loaded snapshot is untouched by the publish.
	assert.Len(t, first.Models, 1)
}

func TestRegistry_ResolveUsesMergedView(t *testing.T) {
	cfg := schema.ModelsConfig{
		Mode: schema.ModeMerge,
		Providers: map[string]schema.ProviderConfig{
			"anthropic": {BaseURL: "http://proxy.local"},
		},
	}
	reg := NewRegistry(builtin, cfg)

	res := reg.Resolve("anthropic", "claude-sonnet", "")

	require.NotNil(t, res.Model)
	assert.False(t, res.Fallback)
	// Built-in model, user-supplied base URL.
	assert.Equal(t, "http://proxy.local", res.Model.BaseURL)
	assert.Equal(t, schema.DialectAnthropicMessages, res.Model.API)
}
