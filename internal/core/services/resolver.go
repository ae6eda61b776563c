package services

import (
	"strings"

	"github.com/driftlabs/model-resolver-api/pkg/api"
	"github.com/driftlabs/model-resolver-api/pkg/schema"
)

// AzureOpenAIProvider is the provider key that implies the Azure responses
// dialect even when no dialect is configured.
const AzureOpenAIProvider = "azure-openai"

// Conservative metadata for models nothing authoritative is known about.
const (
	fallbackContextWindow = 16384
	fallbackMaxTokens     = 4096
)

// ResolveModel returns the best-known descriptor for (providerID, modelID).
//
// A known model under a known provider returns the exact inline-built
// descriptor. Anything else degrades to a synthesized fallback so the caller
// can still attempt the request and surface an attributable backend error
// instead of an opaque "model not found". The only hard-failure path is an
// empty providerID, signalled by a nil Model.
//
// agentContextPath is opaque to the resolver; it is threaded through for the
// auth-storage discovery collaborator.
func ResolveModel(providerID, modelID, agentContextPath string, cfg schema.ModelsConfig) api.Resolution {
	res := api.Resolution{AgentContextPath: agentContextPath}
	if providerID == "" {
		return res
	}

	provider, known := cfg.Providers[providerID]
	if known {
		models := BuildInlineProviderModels(map[string]schema.ProviderConfig{providerID: provider})
		for i := range models {
			if models[i].ID == modelID {
				res.Model = &models[i]
				return res
			}
		}
	}

	res.Model = fallbackModel(providerID, modelID, provider, known)
	res.Fallback = true
	return res
}

// fallbackModel synthesizes a descriptor for an unregistered model. The
// provider key is preserved verbatim (not trimmed) so the caller's intent
// survives even when it matches no registry key. Azure routing fields are
// carried through regardless, because Azure routes by deployment name
// rather than model id.
func fallbackModel(providerID, modelID string, p schema.ProviderConfig, known bool) *schema.ResolvedModel {
	def := schema.ModelDefinition{
		ID:            modelID,
		Name:          modelID,
		Input:         []schema.Modality{schema.ModalityText},
		ContextWindow: fallbackContextWindow,
		MaxTokens:     fallbackMaxTokens,
	}
	if known {
		def.BaseURL = p.BaseURL
		def.API = p.API
		def.AzureDeploymentName = p.AzureDeploymentName
		def.AzureAPIVersion = p.AzureAPIVersion
	}
	if def.API == "" && impliesAzure(providerID, p) {
		def.API = schema.DialectAzureOpenAIResponses
	}
	return &schema.ResolvedModel{ModelDefinition: def, Provider: providerID}
}

// impliesAzure reports whether the request targets an Azure-flavored
// endpoint: the well-known provider key, an azure-prefixed dialect, or a
// configured deployment name.
func impliesAzure(providerID string, p schema.ProviderConfig) bool {
	if providerID == AzureOpenAIProvider {
		return true
	}
	if strings.HasPrefix(string(p.API), "azure-") {
		return true
	}
	return p.AzureDeploymentName != ""
}
