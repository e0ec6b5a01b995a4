package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

const (
	// PBPMaxLimit bounds a single play-by-play page.
	PBPMaxLimit = 500

	pbpSampleSize = 20
)

// PlayPage is one page of play-by-play with pagination echo. Total is
// independent of limit/offset.
type PlayPage struct {
	Total  int           `json:"total"`
	Plays  []*store.Play `json:"plays"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// GameDetail composes a schedule row with a bounded play-by-play sample.
type GameDetail struct {
	*store.Schedule
	PBPSample []*store.Play `json:"pbp_sample"`
}

// GameService reads schedules, scoreboards, game detail and play-by-play.
type GameService struct {
	schedules *repository.ScheduleRepository
	plays     *repository.PlayRepository
}

// NewGameService creates a new game service
func NewGameService(db *store.Database) *GameService {
	return &GameService{
		schedules: repository.NewScheduleRepository(db),
		plays:     repository.NewPlayRepository(db),
	}
}

// Schedules returns games for a season with optional week/team filters,
// ordered by gameday ascending. The season must be loaded in the store.
func (s *GameService) Schedules(ctx context.Context, season int, week *int, team string) ([]*store.Schedule, error) {
	if err := s.validateSeason(ctx, season); err != nil {
		return nil, err
	}

	return s.schedules.List(ctx, season, week, team)
}

// PlayByPlay returns one page of plays plus the total count for the game.
// The count and page queries are not transactionally consistent with each
// other; a write between them can skew total versus page bounds.
func (s *GameService) PlayByPlay(ctx context.Context, gameID string, limit, offset int) (*PlayPage, error) {
	err := validation.Errors{
		"game_id": validation.Validate(gameID, validation.Required),
		"limit":   validation.Validate(limit, validation.Min(1), validation.Max(PBPMaxLimit)),
		"offset":  validation.Validate(offset, validation.Min(0)),
	}.Filter()
	if err != nil {
		return nil, Validationf("invalid play-by-play request: %v", err)
	}

	total, err := s.plays.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	plays, err := s.plays.Page(ctx, gameID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &PlayPage{
		Total:  total,
		Plays:  plays,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Game returns the schedule row plus a sample of the first plays. When the
// schedule row is absent no play query is performed.
func (s *GameService) Game(ctx context.Context, gameID string) (*GameDetail, error) {
	schedule, err := s.schedules.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sample, err := s.plays.Sample(ctx, gameID, pbpSampleSize)
	if err != nil {
		return nil, err
	}

	return &GameDetail{
		Schedule:  schedule,
		PBPSample: sample,
	}, nil
}

// Scoreboard returns all games on a date (YYYY-MM-DD) ordered by kickoff time.
func (s *GameService) Scoreboard(ctx context.Context, date string) ([]*store.Schedule, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, Validationf("invalid date %q (use YYYY-MM-DD)", date)
	}

	return s.schedules.ByDate(ctx, date)
}

// validateSeason rejects seasons that have no schedule data loaded.
func (s *GameService) validateSeason(ctx context.Context, season int) error {
	seasons, err := s.schedules.Seasons(ctx)
	if err != nil {
		return fmt.Errorf("checking loaded seasons: %w", err)
	}

	for _, loaded := range seasons {
		if loaded == season {
			return nil
		}
	}

	return Validationf("season %d is not available; loaded seasons: %v", season, seasons)
}
