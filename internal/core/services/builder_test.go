package services

import (
	"testing"

	"github.com/driftlabs/model-resolver-api/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestBuildInlineProviderModels_CountAndOrder(t *testing.T) {
	providers := map[string]schema.ProviderConfig{
		"alpha": {
			BaseURL: "http://alpha.local",
			Models: []schema.ModelDefinition{
				{ID: "a-1"},
				{ID: "a-2"},
			},
		},
		"beta": {
			BaseURL: "http://beta.local",
			Models: []schema.ModelDefinition{
				{ID: "b-1"},
			},
		},
		"empty": {BaseURL: "http://empty.local"},
	}

	models := BuildInlineProviderModels(providers)

	assert.Len(t, models, 3)
	// Providers in sorted key order, models in declared order.
	assert.Equal(t, "a-1", models[0].ID)
	assert.Equal(t, "a-2", models[1].ID)
	assert.Equal(t, "b-1", models[2].ID)
}

func TestBuildInlineProviderModels_TrimsProviderKey(t *testing.T) {
	providers := map[string]schema.ProviderConfig{
		" alpha ": {
			BaseURL: "http://alpha.local",
			Models:  []schema.ModelDefinition{{ID: "m"}, {ID: "n"}},
		},
	}

	for _, m := range BuildInlineProviderModels(providers) {
		assert.Equal(t, "alpha", m.Provider)
	}
}

func TestBuildInlineProviderModels_BlankKeyNormalized(t *testing.T) {
	providers := map[string]schema.ProviderConfig{
		"   ": {
			BaseURL: "http://nameless.local",
			Models:  []schema.ModelDefinition{{ID: "m"}},
		},
	}

	models := BuildInlineProviderModels(providers)

	assert.Len(t, models, 1)
	assert.Equal(t, "", models[0].Provider)
	assert.Equal(t, "http://nameless.local", models[0].BaseURL)
}

func TestBuildInlineProviderModels_Inheritance(t *testing.T) {
	providers := map[string]schema.ProviderConfig{
		"mixed": {
			BaseURL:             "http://mixed.local",
			API:                 schema.DialectOpenAICompletions,
			AzureDeploymentName: "prov-deploy",
			AzureAPIVersion:     "2024-06-01",
			Models: []schema.ModelDefinition{
				{ID: "inherits"},
				{
					ID:                  "overrides",
					API:                 schema.DialectAnthropicMessages,
					BaseURL:             "http://other.local",
					AzureDeploymentName: "model-deploy",
					AzureAPIVersion:     "2025-01-01",
				},
			},
		},
	}

	models := BuildInlineProviderModels(providers)

	inherits, overrides := models[0], models[1]

	assert.Equal(t, "http://mixed.local", inherits.BaseURL)
	assert.Equal(t, schema.DialectOpenAICompletions, inherits.API)
	assert.Equal(t, "prov-deploy", inherits.AzureDeploymentName)
	assert.Equal(t, "2024-06-01", inherits.AzureAPIVersion)

	// Model-level always wins.
	assert.Equal(t, "http://other.local", overrides.BaseURL)
	assert.Equal(t, schema.DialectAnthropicMessages, overrides.API)
	assert.Equal(t, "model-deploy", overrides.AzureDeploymentName)
	assert.Equal(t, "2025-01-01", overrides.AzureAPIVersion)
}

func TestBuildInlineProviderModels_NoDialectStaysAbsent(t *testing.T) {
	providers := map[string]schema.ProviderConfig{
		"alpha": {
			BaseURL: "http://alpha.local",
			Models:  []schema.ModelDefinition{{ID: "alpha-model"}},
		},
	}

	models := BuildInlineProviderModels(providers)

	assert.Len(t, models, 1)
	assert.Equal(t, "alpha-model", models[0].ID)
	assert.Equal(t, "alpha", models[0].Provider)
	assert.Equal(t, "http://alpha.local", models[0].BaseURL)
	assert.Empty(t, models[0].API)
	assert.Empty(t, models[0].AzureDeploymentName)
}

func TestBuildInlineProviderModels_CopiesThroughFields(t *testing.T) {
	yes := true
	providers := map[string]schema.ProviderConfig{
		"alpha": {
			BaseURL: "http://alpha.local",
			Models: []schema.ModelDefinition{{
				ID:            "full",
				Name:          "Full Model",
				Reasoning:     true,
				Input:         []schema.Modality{schema.ModalityText, schema.ModalityImage},
				Cost:          schema.ModelCost{Input: 3, Output: 15, CacheRead: 0.3, CacheWrite: 3.75},
				ContextWindow: 200000,
				MaxTokens:     8192,
				Headers:       map[string]string{"x-extra": "1"},
				Compat:        &schema.CompatOptions{SupportsStore: &yes, MaxTokensField: "max_completion_tokens"},
			}},
		},
	}

	m := BuildInlineProviderModels(providers)[0]

	assert.Equal(t, "Full Model", m.Name)
	assert.True(t, m.Reasoning)
	assert.Equal(t, []schema.Modality{schema.ModalityText, schema.ModalityImage}, m.Input)
	assert.Equal(t, 15.0, m.Cost.Output)
	assert.Equal(t, 200000, m.ContextWindow)
	assert.Equal(t, 8192, m.MaxTokens)
	assert.Equal(t, "1", m.Headers["x-extra"])
	assert.Equal(t, "max_completion_tokens", m.Compat.MaxTokensField)
}
