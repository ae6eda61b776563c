package services

import (
	"testing"

	"github.com/driftlabs/model-resolver-api/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWith(providers map[string]schema.ProviderConfig) schema.ModelsConfig {
	return schema.ModelsConfig{Providers: providers}
}

func TestResolveModel_KnownModel(t *testing.T) {
	cfg := configWith(map[string]schema.ProviderConfig{
		"alpha": {
			BaseURL: "http://alpha.local",
			API:     schema.DialectAnthropicMessages,
			Models: []schema.ModelDefinition{
				{ID: "alpha-model", Name: "Alpha", ContextWindow: 200000, MaxTokens: 8192},
			},
		},
	})

	res := ResolveModel("alpha", "alpha-model", "/tmp/agent", cfg)

	require.NotNil(t, res.Model)
	assert.False(t, res.Fallback)
	assert.Equal(t, "alpha", res.Model.Provider)
	assert.Equal(t, "http://alpha.local", res.Model.BaseURL)
	assert.Equal(t, schema.DialectAnthropicMessages, res.Model.API)
	assert.Equal(t, 200000, res.Model.ContextWindow)
	assert.Equal(t, "/tmp/agent", res.AgentContextPath)

	// Resolution is idempotent.
	again := ResolveModel("alpha", "alpha-model", "/tmp/agent", cfg)
	assert.Equal(t, res.Model, again.Model)
}

func TestResolveModel_UnknownModelFallsBack(t *testing.T) {
	cfg := configWith(map[string]schema.ProviderConfig{
		"custom": {BaseURL: "http://localhost:9000"},
	})

	res := ResolveModel("custom", "missing-model", "", cfg)

	require.NotNil(t, res.Model)
	assert.True(t, res.Fallback)
	assert.Equal(t, "missing-model", res.Model.ID)
	assert.Equal(t, "custom", res.Model.Provider)
	assert.Equal(t, "http://localhost:9000", res.Model.BaseURL)
	assert.Zero(t, res.Model.Cost.Input)
	assert.Positive(t, res.Model.ContextWindow)
}

func TestResolveModel_UnknownProviderFallsBack(t *testing.T) {
	res := ResolveModel("nowhere", "some-model", "", schema.ModelsConfig{})

	require.NotNil(t, res.Model)
	assert.True(t, res.Fallback)
	assert.Equal(t, "some-model", res.Model.ID)
	assert.Equal(t, "nowhere", res.Model.Provider)
	assert.Empty(t, res.Model.BaseURL)
}

func TestResolveModel_ProviderKeyNotTrimmedOnFallback(t *testing.T) {
	res := ResolveModel(" spaced ", "m", "", schema.ModelsConfig{})

	require.NotNil(t, res.Model)
	assert.Equal(t, " spaced ", res.Model.Provider)
}

func TestResolveModel_AzureDialectDefault(t *testing.T) {
	res := ResolveModel(AzureOpenAIProvider, "gpt-x", "", schema.ModelsConfig{})

	require.NotNil(t, res.Model)
	assert.Equal(t, schema.DialectAzureOpenAIResponses, res.Model.API)
}

func TestResolveModel_AzureDialectNotForcedWhenConfigured(t *testing.T) {
	cfg := configWith(map[string]schema.ProviderConfig{
		AzureOpenAIProvider: {
			BaseURL: "https://example.openai.azure.com",
			API:     schema.DialectOpenAIResponses,
		},
	})

	res := ResolveModel(AzureOpenAIProvider, "gpt-x", "", cfg)

	require.NotNil(t, res.Model)
	assert.Equal(t, schema.DialectOpenAIResponses, res.Model.API)
}

func TestResolveModel_FallbackCarriesAzureRouting(t *testing.T) {
	cfg := configWith(map[string]schema.ProviderConfig{
		"my-azure": {
			BaseURL:             "https://example.openai.azure.com",
			AzureDeploymentName: "gpt4-prod",
			AzureAPIVersion:     "2024-10-21",
		},
	})

	res := ResolveModel("my-azure", "not-declared", "", cfg)

	require.NotNil(t, res.Model)
	assert.Equal(t, "gpt4-prod", res.Model.AzureDeploymentName)
	assert.Equal(t, "2024-10-21", res.Model.AzureAPIVersion)
	// Deployment name implies the Azure responses dialect.
	assert.Equal(t, schema.DialectAzureOpenAIResponses, res.Model.API)
}

func TestResolveModel_EmptyProviderIsTheOnlyHardFailure(t *testing.T) {
	res := ResolveModel("", "model", "", schema.ModelsConfig{})

	assert.Nil(t, res.Model)
	assert.False(t, res.Fallback)
}
