package schema

import "time"

// AuthMode selects how credentials are presented to a provider endpoint.
type AuthMode string

const (
	AuthAPIKey AuthMode = "api-key"
	AuthAWSSDK AuthMode = "aws-sdk"
	AuthOAuth  AuthMode = "oauth"
	AuthToken  AuthMode = "token"
)

// APIDialect tags the wire-protocol flavor a provider or model speaks.
type APIDialect string

const (
	DialectOpenAICompletions    APIDialect = "openai-completions"
	DialectOpenAIResponses      APIDialect = "openai-responses"
	DialectAnthropicMessages    APIDialect = "anthropic-messages"
	DialectGoogleGenerativeAI   APIDialect = "google-generative-ai"
	DialectAzureOpenAIResponses APIDialect = "azure-openai-responses"
	DialectBedrockConverse      APIDialect = "bedrock-converse"
)

// Modality is an input type a model accepts.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)

// ModelCost holds per-1M-token rates in USD.
type ModelCost struct {
	Input      float64 `json:"input" yaml:"input" mapstructure:"input"`
	Output     float64 `json:"output" yaml:"output" mapstructure:"output"`
	CacheRead  float64 `json:"cache_read" yaml:"cache_read" mapstructure:"cache_read"`
	CacheWrite float64 `json:"cache_write" yaml:"cache_write" mapstructure:"cache_write"`
}

// CompatOptions tweaks request shaping for endpoints that only partially
// implement a dialect. Nil pointers mean "no opinion, use dialect default".
type CompatOptions struct {
	SupportsStore           *bool  `json:"supports_store,omitempty" yaml:"supports_store,omitempty" mapstructure:"supports_store"`
	SupportsDeveloperRole   *bool  `json:"supports_developer_role,omitempty" yaml:"supports_developer_role,omitempty" mapstructure:"supports_developer_role"`
	SupportsReasoningEffort *bool  `json:"supports_reasoning_effort,omitempty" yaml:"supports_reasoning_effort,omitempty" mapstructure:"supports_reasoning_effort"`
	MaxTokensField          string `json:"max_tokens_field,omitempty" yaml:"max_tokens_field,omitempty" mapstructure:"max_tokens_field"`
}

// ModelDefinition is a model as declared inline under a provider.
// BaseURL, API and the Azure fields are optional overrides; when empty they
// inherit the provider-level value.
type ModelDefinition struct {
	ID                  string            `json:"id" yaml:"id" mapstructure:"id"`
	Name                string            `json:"name" yaml:"name" mapstructure:"name"`
	API                 APIDialect        `json:"api,omitempty" yaml:"api,omitempty" mapstructure:"api"`
	BaseURL             string            `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`
	Reasoning           bool              `json:"reasoning" yaml:"reasoning" mapstructure:"reasoning"`
	Input               []Modality        `json:"input" yaml:"input" mapstructure:"input"`
	Cost                ModelCost         `json:"cost" yaml:"cost" mapstructure:"cost"`
	ContextWindow       int               `json:"context_window" yaml:"context_window" mapstructure:"context_window"`
	MaxTokens           int               `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`
	Headers             map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" mapstructure:"headers"`
	Compat              *CompatOptions    `json:"compat,omitempty" yaml:"compat,omitempty" mapstructure:"compat"`
	AzureDeploymentName string            `json:"azure_deployment_name,omitempty" yaml:"azure_deployment_name,omitempty" mapstructure:"azure_deployment_name"`
	AzureAPIVersion     string            `json:"azure_api_version,omitempty" yaml:"azure_api_version,omitempty" mapstructure:"azure_api_version"`
}

// ProviderConfig is one configured backend endpoint and the models it
// declares inline.
type ProviderConfig struct {
	BaseURL             string            `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required"`
	APIKey              string            `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
	Auth                AuthMode          `json:"auth,omitempty" yaml:"auth,omitempty" mapstructure:"auth" validate:"omitempty,oneof=api-key aws-sdk oauth token"`
	API                 APIDialect        `json:"api,omitempty" yaml:"api,omitempty" mapstructure:"api"`
	Headers             map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" mapstructure:"headers"`
	AuthHeader          *bool             `json:"auth_header,omitempty" yaml:"auth_header,omitempty" mapstructure:"auth_header"`
	AzureDeploymentName string            `json:"azure_deployment_name,omitempty" yaml:"azure_deployment_name,omitempty" mapstructure:"azure_deployment_name"`
	AzureAPIVersion     string            `json:"azure_api_version,omitempty" yaml:"azure_api_version,omitempty" mapstructure:"azure_api_version"`
	Models              []ModelDefinition `json:"models,omitempty" yaml:"models,omitempty" mapstructure:"models"`
}

// ResolvedModel is a fully-qualified model descriptor: the definition with
// provider-level inheritance already applied, plus the owning provider key.
// It is constructed fresh per resolution and never mutated afterwards, so
// callers may cache it keyed on (provider, model id).
type ResolvedModel struct {
	ModelDefinition `yaml:",inline"`

	Provider string `json:"provider" yaml:"provider"`
}

// MergeMode governs how user configuration combines with built-in provider
// defaults.
type MergeMode string

const (
	// ModeMerge overlays explicit user fields onto the built-in provider
	// config field-by-field.
	ModeMerge MergeMode = "merge"
	// ModeReplace discards the built-in config for any provider key the
	// user declares.
	ModeReplace MergeMode = "replace"
)

// BedrockDiscovery configures optional discovery of managed-inference
// models from an AWS region.
type BedrockDiscovery struct {
	Enabled              bool          `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Region               string        `json:"region,omitempty" yaml:"region,omitempty" mapstructure:"region"`
	ProviderFilter       []string      `json:"provider_filter,omitempty" yaml:"provider_filter,omitempty" mapstructure:"provider_filter"`
	RefreshInterval      time.Duration `json:"refresh_interval,omitempty" yaml:"refresh_interval,omitempty" mapstructure:"refresh_interval"`
	DefaultContextWindow int           `json:"default_context_window,omitempty" yaml:"default_context_window,omitempty" mapstructure:"default_context_window"`
	DefaultMaxTokens     int           `json:"default_max_tokens,omitempty" yaml:"default_max_tokens,omitempty" mapstructure:"default_max_tokens"`
	SnapshotPath         string        `json:"snapshot_path,omitempty" yaml:"snapshot_path,omitempty" mapstructure:"snapshot_path"`
}

// ModelsConfig is the root model-selection configuration.
type ModelsConfig struct {
	Mode             MergeMode                 `json:"mode,omitempty" yaml:"mode,omitempty" mapstructure:"mode"`
	Providers        map[string]ProviderConfig `json:"providers,omitempty" yaml:"providers,omitempty" mapstructure:"providers"`
	BedrockDiscovery BedrockDiscovery          `json:"bedrock_discovery,omitempty" yaml:"bedrock_discovery,omitempty" mapstructure:"bedrock_discovery"`
}
