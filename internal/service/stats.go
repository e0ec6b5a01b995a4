package service

import (
	"context"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// StatsService reads power ratings, injury reports and depth charts.
type StatsService struct {
	stats *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(db *store.Database) *StatsService {
	return &StatsService{
		stats: repository.NewStatsRepository(db),
	}
}

// PowerRatings returns a season's ratings ordered by elo_rank ascending.
func (s *StatsService) PowerRatings(ctx context.Context, season int) ([]*store.PowerRating, error) {
	return s.stats.PowerRatings(ctx, season)
}

// Injuries returns injury reports for a season with optional week/team
// filters. Duplicate rows are returned as stored.
func (s *StatsService) Injuries(ctx context.Context, season int, week *int, team string) ([]*store.Injury, error) {
	return s.stats.Injuries(ctx, season, week, team)
}

// DepthCharts returns depth chart entries for a team+season ordered by
// position then depth rank.
func (s *StatsService) DepthCharts(ctx context.Context, team string, season int, week *int) ([]*store.DepthChartEntry, error) {
	if team == "" {
		return nil, Validationf("team is required")
	}

	return s.stats.DepthCharts(ctx, team, season, week)
}
