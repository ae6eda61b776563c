package services

import (
	"sync/atomic"

	"github.com/driftlabs/model-resolver-api/pkg/api"
	"github.com/driftlabs/model-resolver-api/pkg/schema"
)

// MergeProviders reconciles two provider maps according to mode.
//
// ModeReplace: an overriding entry wins outright for its provider key.
// ModeMerge: overriding entries are combined with the base field-by-field,
// explicit fields winning and unset fields inheriting. Keys present on only
// one side are retained either way.
func MergeProviders(base, override map[string]schema.ProviderConfig, mode schema.MergeMode) map[string]schema.ProviderConfig {
	out := make(map[string]schema.ProviderConfig, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		existing, ok := out[k]
		if !ok || mode == schema.ModeReplace {
			out[k] = v
			continue
		}
		out[k] = overlayProvider(existing, v)
	}
	return out
}

func overlayProvider(base, over schema.ProviderConfig) schema.ProviderConfig {
	if over.BaseURL != "" {
		base.BaseURL = over.BaseURL
	}
	if over.APIKey != "" {
		base.APIKey = over.APIKey
	}
	if over.Auth != "" {
		base.Auth = over.Auth
	}
	if over.API != "" {
		base.API = over.API
	}
	if over.Headers != nil {
		base.Headers = over.Headers
	}
	if over.AuthHeader != nil {
		base.AuthHeader = over.AuthHeader
	}
	if over.AzureDeploymentName != "" {
		base.AzureDeploymentName = over.AzureDeploymentName
	}
	if over.AzureAPIVersion != "" {
		base.AzureAPIVersion = over.AzureAPIVersion
	}
	if over.Models != nil {
		base.Models = over.Models
	}
	return base
}

// Snapshot is an immutable view of the effective configuration and the
// inline models built from it.
type Snapshot struct {
	Config schema.ModelsConfig
	Models []schema.ResolvedModel
}

// Registry holds the current configuration snapshot. Publish swaps the
// whole snapshot atomically, so a resolution that is already in flight
// never observes a half-merged provider map.
type Registry struct {
	builtin map[string]schema.ProviderConfig
	snap    atomic.Pointer[Snapshot]
}

// NewRegistry seeds the registry with built-in provider defaults and the
// user configuration.
func NewRegistry(builtin map[string]schema.ProviderConfig, cfg schema.ModelsConfig) *Registry {
	r := &Registry{builtin: builtin}
	r.Publish(cfg, nil)
	return r
}

// Publish recomputes the merged provider set, folds in any discovered
// providers, and installs the result as the current snapshot. Discovered
// entries are applied after user configuration under the same mode.
func (r *Registry) Publish(cfg schema.ModelsConfig, discovered map[string]schema.ProviderConfig) {
	mode := cfg.Mode
	if mode == "" {
		mode = schema.ModeMerge
	}

	merged := MergeProviders(r.builtin, cfg.Providers, mode)
	if len(discovered) > 0 {
		merged = MergeProviders(merged, discovered, mode)
	}

	effective := cfg
	effective.Providers = merged

	r.snap.Store(&Snapshot{
		Config: effective,
		Models: BuildInlineProviderModels(merged),
	})
}

// Snapshot returns the current immutable snapshot.
func (r *Registry) Snapshot() *Snapshot {
	return r.snap.Load()
}

// Resolve runs a resolution against the current snapshot.
func (r *Registry) Resolve(providerID, modelID, agentContextPath string) api.Resolution {
	return ResolveModel(providerID, modelID, agentContextPath, r.Snapshot().Config)
}
