package services

import (
	"sort"
	"strings"

	"github.com/driftlabs/model-resolver-api/pkg/schema"
)

// BuildInlineProviderModels expands each provider's declared model list into
// fully-qualified descriptors, applying provider-to-model inheritance.
//
// Providers iterate in sorted key order so output is deterministic; models
// keep their declared order. Provider keys are trimmed of surrounding
// whitespace but never rejected: a blank key still yields models whose
// Provider field is the empty string. Absent model lists contribute nothing.
func BuildInlineProviderModels(providers map[string]schema.ProviderConfig) []schema.ResolvedModel {
	keys := make([]string, 0, len(providers))
	for k := range providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []schema.ResolvedModel
	for _, key := range keys {
		p := providers[key]
		name := strings.TrimSpace(key)
		for _, def := range p.Models {
			out = append(out, resolveDefinition(name, p, def))
		}
	}
	return out
}

// resolveDefinition fills the inheritable fields of a single definition:
// the model-level value wins, else the provider-level value, else the field
// stays empty. Every other field is copied through unchanged. The input
// definition is a value copy, so configuration is never mutated.
func resolveDefinition(provider string, p schema.ProviderConfig, def schema.ModelDefinition) schema.ResolvedModel {
	if def.BaseURL == "" {
		def.BaseURL = p.BaseURL
	}
	if def.API == "" {
		def.API = p.API
	}
	if def.AzureDeploymentName == "" {
		def.AzureDeploymentName = p.AzureDeploymentName
	}
	if def.AzureAPIVersion == "" {
		def.AzureAPIVersion = p.AzureAPIVersion
	}
	return schema.ResolvedModel{ModelDefinition: def, Provider: provider}
}
