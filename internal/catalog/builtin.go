package catalog

import "github.com/driftlabs/model-resolver-api/pkg/schema"

// Builtin returns the default provider catalog that user configuration is
// merged against. Returned fresh per call so callers can mutate their copy
// without affecting later merges.
func Builtin() map[string]schema.ProviderConfig {
	return map[string]schema.ProviderConfig{
		"anthropic": {
			BaseURL: "https://api.anthropic.com",
			Auth:    schema.AuthAPIKey,
			API:     schema.DialectAnthropicMessages,
			Models: []schema.ModelDefinition{
				{
					ID:            "claude-sonnet-4-5",
					Name:          "Claude Sonnet 4.5",
					Reasoning:     true,
					Input:         []schema.Modality{schema.ModalityText, schema.ModalityImage},
					Cost:          schema.ModelCost{Input: 3, Output: 15, CacheRead: 0.3, CacheWrite: 3.75},
					ContextWindow: 200000,
					MaxTokens:     64000,
				},
				{
					ID:            "claude-haiku-4-5",
					Name:          "Claude Haiku 4.5",
					Input:         []schema.Modality{schema.ModalityText, schema.ModalityImage},
					Cost:          schema.ModelCost{Input: 1, Output: 5, CacheRead: 0.1, CacheWrite: 1.25},
					ContextWindow: 200000,
					MaxTokens:     64000,
				},
			},
		},
		"openai": {
			BaseURL: "https://api.openai.com/v1",
			Auth:    schema.AuthAPIKey,
			API:     schema.DialectOpenAIResponses,
			Models: []schema.ModelDefinition{
				{
					ID:            "gpt-4o",
					Name:          "GPT-4o",
					Input:         []schema.Modality{schema.ModalityText, schema.ModalityImage},
					Cost:          schema.ModelCost{Input: 2.5, Output: 10, CacheRead: 1.25},
					ContextWindow: 128000,
					MaxTokens:     16384,
				},
				{
					ID:            "o3-mini",
					Name:          "o3-mini",
					Reasoning:     true,
					Input:         []schema.Modality{schema.ModalityText},
					Cost:          schema.ModelCost{Input: 1.1, Output: 4.4, CacheRead: 0.55},
					ContextWindow: 200000,
					MaxTokens:     100000,
					Compat:        &schema.CompatOptions{MaxTokensField: "max_completion_tokens"},
				},
			},
		},
		"azure-openai": {
			// Base URL must be supplied by the user; deployments are
			// account-specific.
			BaseURL: "https://example.openai.azure.com",
			Auth:    schema.AuthAPIKey,
			API:     schema.DialectAzureOpenAIResponses,
		},
		"openrouter": {
			BaseURL: "https://openrouter.ai/api/v1",
			Auth:    schema.AuthAPIKey,
			API:     schema.DialectOpenAICompletions,
		},
		"bedrock": {
			BaseURL: "https://bedrock-runtime.us-east-1.amazonaws.com",
			Auth:    schema.AuthAWSSDK,
			API:     schema.DialectBedrockConverse,
		},
	}
}
