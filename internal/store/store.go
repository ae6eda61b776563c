package store

import (
	"context"

	"github.com/driftlabs/model-resolver-api/internal/store/model"
)

type contextKey string

// ContextKeyAPIKey carries the authenticated *model.APIKey on the request
// context after auth succeeds.
const ContextKeyAPIKey contextKey = "api_key"

// Repository is the main contract for the data layer.
type Repository interface {
	Resolutions() ResolutionRepository
	APIKeys() APIKeyRepository

	Close() error
}

type ResolutionRepository interface {
	// Log stores a completed resolution.
	Log(ctx context.Context, log *model.ResolutionLog) error
	// GetRecent returns the last N resolution logs.
	GetRecent(ctx context.Context, limit int) ([]model.ResolutionLog, error)
	// GetDailyStats returns aggregated stats grouped by day.
	GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error)
}

type APIKeyRepository interface {
	// Create provisions a new key record.
	Create(ctx context.Context, key *model.APIKey) error
	// GetByHash looks up a key by the SHA-256 hash of its token.
	GetByHash(ctx context.Context, hash string) (*model.APIKey, error)
	// UpdateUsage stamps the key's last-used time.
	UpdateUsage(ctx context.Context, id string) error
}
