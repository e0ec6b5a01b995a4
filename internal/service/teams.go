package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// TeamProfile composes team reference data with its stats, power rating and
// season schedule. Stats and power rating are nil when not yet loaded.
type TeamProfile struct {
	TeamInfo    *store.Team            `json:"team_info"`
	Stats       *store.TeamSeasonStats `json:"stats"`
	PowerRating *store.PowerRating     `json:"power_rating"`
	Schedule    []*store.Schedule      `json:"schedule"`
}

// TeamService reads team reference data, weekly stats and composed profiles.
type TeamService struct {
	teams     *repository.TeamRepository
	stats     *repository.StatsRepository
	schedules *repository.ScheduleRepository
}

// NewTeamService creates a new team service
func NewTeamService(db *store.Database) *TeamService {
	return &TeamService{
		teams:     repository.NewTeamRepository(db),
		stats:     repository.NewStatsRepository(db),
		schedules: repository.NewScheduleRepository(db),
	}
}

// Teams returns all teams. The dataset is small and static; no pagination.
func (s *TeamService) Teams(ctx context.Context) ([]*store.Team, error) {
	return s.teams.GetAll(ctx)
}

// TeamStats returns the stats row for a team+season, latest week when week
// is nil. Absence is store.ErrNotFound; the handler renders the empty-object
// sentinel.
func (s *TeamService) TeamStats(ctx context.Context, team string, season int, week *int) (*store.TeamSeasonStats, error) {
	return s.stats.TeamSeason(ctx, team, season, week)
}

// Profile composes team info, latest stats, power rating and schedule. The
// four reads fan out concurrently. An unknown team is store.ErrNotFound;
// missing stats or rating leave those fields nil.
func (s *TeamService) Profile(ctx context.Context, team string, season int) (*TeamProfile, error) {
	profile := &TeamProfile{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		info, err := s.teams.GetByAbbr(gctx, team)
		if err != nil {
			return err
		}
		profile.TeamInfo = info
		return nil
	})

	g.Go(func() error {
		stats, err := s.stats.TeamSeason(gctx, team, season, nil)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		profile.Stats = stats
		return nil
	})

	g.Go(func() error {
		rating, err := s.stats.PowerRating(gctx, team, season)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		profile.PowerRating = rating
		return nil
	})

	g.Go(func() error {
		schedule, err := s.schedules.List(gctx, season, nil, team)
		if err != nil {
			return err
		}
		profile.Schedule = schedule
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile, nil
}
