package api

import "github.com/driftlabs/model-resolver-api/pkg/schema"

// Resolution is the outcome of a resolve call. Model is nil only when the
// caller supplied no provider id at all; every other miss degrades to a
// fallback descriptor instead.
type Resolution struct {
	Model *schema.ResolvedModel `json:"model,omitempty"`

	// Fallback is true when the descriptor was synthesized because no
	// configured model matched the request.
	Fallback bool `json:"fallback"`

	// AgentContextPath is threaded through verbatim for downstream
	// auth-storage discovery; the resolver does not interpret it.
	AgentContextPath string `json:"agent_context_path,omitempty"`
}

// ModelList is the /v1/models response envelope.
type ModelList struct {
	Object string                 `json:"object"`
	Data   []schema.ResolvedModel `json:"data"`
}

// ModelFilter narrows a model listing.
type ModelFilter struct {
	Provider string
	ID       string
}
