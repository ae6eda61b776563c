package analytics

import (
	"context"

	"github.com/driftlabs/model-resolver-api/internal/store"
	"github.com/driftlabs/model-resolver-api/internal/store/model"
)

type Service interface {
	GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error)
	GetRecent(ctx context.Context, limit int) ([]model.ResolutionLog, error)
}

type service struct {
	repo store.Repository
}

func NewService(repo store.Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetUsageOverview(ctx context.Context, days int) ([]model.DailyStats, error) {
	if days <= 0 {
		days = 7 // default to last week
	}
	return s.repo.Resolutions().GetDailyStats(ctx, days)
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]model.ResolutionLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.repo.Resolutions().GetRecent(ctx, limit)
}
