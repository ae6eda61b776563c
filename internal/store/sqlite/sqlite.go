package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/driftlabs/model-resolver-api/internal/store"
	"github.com/driftlabs/model-resolver-api/internal/store/model"
)

// Repository implements store.Repository on sqlite.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Resolutions() store.ResolutionRepository {
	return &resolutionRepo{db: r.db}
}

func (r *Repository) APIKeys() store.APIKeyRepository {
	return &apiKeyRepo{db: r.db}
}

type resolutionRepo struct {
	db *sqlx.DB
}

func (r *resolutionRepo) Log(ctx context.Context, log *model.ResolutionLog) error {
	query := `
	INSERT INTO resolution_logs (
		id, provider, model_id, base_url, api, fallback, latency_us, created_at
	) VALUES (
		:id, :provider, :model_id, :base_url, :api, :fallback, :latency_us, :created_at
	)`
	_, err := r.db.NamedExecContext(ctx, query, log)
	return err
}

func (r *resolutionRepo) GetRecent(ctx context.Context, limit int) ([]model.ResolutionLog, error) {
	var logs []model.ResolutionLog
	query := `SELECT * FROM resolution_logs ORDER BY created_at DESC LIMIT ?`
	err := r.db.SelectContext(ctx, &logs, query, limit)
	return logs, err
}

func (r *resolutionRepo) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	var stats []model.DailyStats
	query := `
		SELECT
			DATE(created_at) as date,
			COUNT(*) as total_resolutions,
			SUM(CASE WHEN fallback THEN 1 ELSE 0 END) as fallbacks,
			AVG(latency_us) as avg_latency_us
		FROM resolution_logs
		WHERE created_at >= DATE('now', ?)
		GROUP BY date
		ORDER BY date DESC
	`
	// SQLite date offset format is '-7 days'
	err := r.db.SelectContext(ctx, &stats, query, fmt.Sprintf("-%d days", days))
	return stats, err
}

type apiKeyRepo struct {
	db *sqlx.DB
}

func (r *apiKeyRepo) Create(ctx context.Context, key *model.APIKey) error {
	query := `
	INSERT INTO api_keys (
		id, name, key_hash, created_at
	) VALUES (
		:id, :name, :key_hash, :created_at
	)`
	_, err := r.db.NamedExecContext(ctx, query, key)
	return err
}

func (r *apiKeyRepo) GetByHash(ctx context.Context, hash string) (*model.APIKey, error) {
	var key model.APIKey
	query := `SELECT * FROM api_keys WHERE key_hash = ?`
	if err := r.db.GetContext(ctx, &key, query, hash); err != nil {
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepo) UpdateUsage(ctx context.Context, id string) error {
	query := `UPDATE api_keys SET last_used_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
