package model

import "time"

// ResolutionLog is one persisted model-resolution event.
type ResolutionLog struct {
	ID        string    `db:"id" json:"id"`
	Provider  string    `db:"provider" json:"provider"`
	ModelID   string    `db:"model_id" json:"model_id"`
	BaseURL   string    `db:"base_url" json:"base_url"`
	API       string    `db:"api" json:"api"`
	Fallback  bool      `db:"fallback" json:"fallback"`
	LatencyUS int64     `db:"latency_us" json:"latency_us"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// APIKey is a provisioned client credential. Only the SHA-256 hash of the
// token is stored.
type APIKey struct {
	ID         string     `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	KeyHash    string     `db:"key_hash" json:"-"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	LastUsedAt *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
}

// DailyStats aggregates resolutions per day.
type DailyStats struct {
	Date             string  `db:"date" json:"date"`
	TotalResolutions int64   `db:"total_resolutions" json:"total_resolutions"`
	Fallbacks        int64   `db:"fallbacks" json:"fallbacks"`
	AvgLatencyUS     float64 `db:"avg_latency_us" json:"avg_latency_us"`
}
