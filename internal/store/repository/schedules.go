package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

const scheduleColumns = `game_id, season, week, gameday, gametime, home_team, away_team,
		stadium, roof, temp, wind, spread_line, total_line,
		home_moneyline, away_moneyline, home_score, away_score, result`

// ScheduleRepository handles schedule data access
type ScheduleRepository struct {
	db *store.Database
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *store.Database) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List returns schedules for a season, optionally filtered by week and by
// team (matching either the home or away participant), ordered by gameday.
func (r *ScheduleRepository) List(ctx context.Context, season int, week *int, team string) ([]*store.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE season = $1`
	args := []interface{}{season}

	if week != nil {
		args = append(args, *week)
		query += fmt.Sprintf(" AND week = $%d", len(args))
	}
	if team != "" {
		args = append(args, team)
		query += fmt.Sprintf(" AND (home_team = $%d OR away_team = $%d)", len(args), len(args))
	}

	query += " ORDER BY gameday"

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying schedules: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// GetByID finds a schedule row by its game identifier
func (r *ScheduleRepository) GetByID(ctx context.Context, gameID string) (*store.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE game_id = $1`

	s := &store.Schedule{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&s.GameID, &s.Season, &s.Week, &s.Gameday, &s.Gametime, &s.HomeTeam, &s.AwayTeam,
		&s.Stadium, &s.Roof, &s.Temp, &s.Wind, &s.SpreadLine, &s.TotalLine,
		&s.HomeMoneyline, &s.AwayMoneyline, &s.HomeScore, &s.AwayScore, &s.Result,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}

	return s, nil
}

// ByDate returns all games on a specific gameday (YYYY-MM-DD),
// ordered by scheduled kickoff time.
func (r *ScheduleRepository) ByDate(ctx context.Context, date string) ([]*store.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE gameday = $1
		ORDER BY gametime`

	rows, err := r.db.DB().QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("querying scoreboard: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// Seasons returns the distinct seasons that have schedule rows loaded.
func (r *ScheduleRepository) Seasons(ctx context.Context) ([]int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT DISTINCT season FROM schedules ORDER BY season`)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	seasons := []int{}
	for rows.Next() {
		var season int
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, season)
	}

	return seasons, rows.Err()
}

// UpsertBatch inserts or updates schedules keyed by game_id.
func (r *ScheduleRepository) UpsertBatch(ctx context.Context, schedules []*store.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	const cols = 18
	args := make([]interface{}, 0, len(schedules)*cols)
	for _, s := range schedules {
		args = append(args,
			s.GameID, s.Season, s.Week, s.Gameday, s.Gametime, s.HomeTeam, s.AwayTeam,
			s.Stadium, s.Roof, s.Temp, s.Wind, s.SpreadLine, s.TotalLine,
			s.HomeMoneyline, s.AwayMoneyline, s.HomeScore, s.AwayScore, s.Result,
		)
	}

	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ` + valuesClause(len(schedules), cols) + `
		ON CONFLICT (game_id) DO UPDATE SET
			season = EXCLUDED.season,
			week = EXCLUDED.week,
			gameday = EXCLUDED.gameday,
			gametime = EXCLUDED.gametime,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			stadium = EXCLUDED.stadium,
			roof = EXCLUDED.roof,
			temp = EXCLUDED.temp,
			wind = EXCLUDED.wind,
			spread_line = EXCLUDED.spread_line,
			total_line = EXCLUDED.total_line,
			home_moneyline = EXCLUDED.home_moneyline,
			away_moneyline = EXCLUDED.away_moneyline,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			result = EXCLUDED.result`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting schedules: %w", err)
	}

	return nil
}

// scanSchedules scans multiple schedule rows
func scanSchedules(rows *sql.Rows) ([]*store.Schedule, error) {
	schedules := []*store.Schedule{}
	for rows.Next() {
		s := &store.Schedule{}
		err := rows.Scan(
			&s.GameID, &s.Season, &s.Week, &s.Gameday, &s.Gametime, &s.HomeTeam, &s.AwayTeam,
			&s.Stadium, &s.Roof, &s.Temp, &s.Wind, &s.SpreadLine, &s.TotalLine,
			&s.HomeMoneyline, &s.AwayMoneyline, &s.HomeScore, &s.AwayScore, &s.Result,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}
