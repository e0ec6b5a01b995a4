package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

const seasonStatColumns = `team, season, week, wins, losses, ties, points_for, points_against,
		off_epa, def_epa, ats_wins, ats_losses`

const injuryColumns = `player_id, player_name, team, season, week, position,
		report_status, report_primary_injury, practice_status`

const depthChartColumns = `team, season, week, position, depth_rank, player_id, player_name`

// StatsRepository handles team stats, power ratings, injuries and depth charts
type StatsRepository struct {
	db *store.Database
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *store.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// TeamSeason returns the stats row for a team+season. When week is nil the
// row with the maximum week is selected (latest available).
func (r *StatsRepository) TeamSeason(ctx context.Context, team string, season int, week *int) (*store.TeamSeasonStats, error) {
	query := `
		SELECT ` + seasonStatColumns + `
		FROM season_stats
		WHERE team = $1 AND season = $2`
	args := []interface{}{team, season}

	if week != nil {
		args = append(args, *week)
		query += fmt.Sprintf(" AND week = $%d", len(args))
	} else {
		query += " ORDER BY week DESC"
	}
	query += " LIMIT 1"

	s := &store.TeamSeasonStats{}
	err := r.db.DB().QueryRowContext(ctx, query, args...).Scan(
		&s.Team, &s.Season, &s.Week, &s.Wins, &s.Losses, &s.Ties, &s.PointsFor, &s.PointsAgainst,
		&s.OffEPA, &s.DefEPA, &s.ATSWins, &s.ATSLosses,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying team stats: %w", err)
	}

	return s, nil
}

// PowerRatings returns all ratings for a season ordered by elo_rank ascending.
func (r *StatsRepository) PowerRatings(ctx context.Context, season int) ([]*store.PowerRating, error) {
	query := `
		SELECT team, season, elo_rating, elo_rank
		FROM power_ratings
		WHERE season = $1
		ORDER BY elo_rank`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying power ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*store.PowerRating{}
	for rows.Next() {
		pr := &store.PowerRating{}
		if err := rows.Scan(&pr.Team, &pr.Season, &pr.EloRating, &pr.EloRank); err != nil {
			return nil, fmt.Errorf("scanning power rating: %w", err)
		}
		ratings = append(ratings, pr)
	}

	return ratings, rows.Err()
}

// PowerRating returns a single team's rating for a season.
func (r *StatsRepository) PowerRating(ctx context.Context, team string, season int) (*store.PowerRating, error) {
	query := `
		SELECT team, season, elo_rating, elo_rank
		FROM power_ratings
		WHERE team = $1 AND season = $2`

	pr := &store.PowerRating{}
	err := r.db.DB().QueryRowContext(ctx, query, team, season).Scan(&pr.Team, &pr.Season, &pr.EloRating, &pr.EloRank)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying power rating: %w", err)
	}

	return pr, nil
}

// Injuries returns injury reports for a season with optional week/team
// filters. Duplicate rows are returned as stored; no ordering is guaranteed.
func (r *StatsRepository) Injuries(ctx context.Context, season int, week *int, team string) ([]*store.Injury, error) {
	query := `
		SELECT ` + injuryColumns + `
		FROM injuries
		WHERE season = $1`
	args := []interface{}{season}

	if week != nil {
		args = append(args, *week)
		query += fmt.Sprintf(" AND week = $%d", len(args))
	}
	if team != "" {
		args = append(args, team)
		query += fmt.Sprintf(" AND team = $%d", len(args))
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying injuries: %w", err)
	}
	defer rows.Close()

	injuries := []*store.Injury{}
	for rows.Next() {
		inj := &store.Injury{}
		err := rows.Scan(
			&inj.PlayerID, &inj.PlayerName, &inj.Team, &inj.Season, &inj.Week, &inj.Position,
			&inj.ReportStatus, &inj.PrimaryInjury, &inj.PracticeStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning injury: %w", err)
		}
		injuries = append(injuries, inj)
	}

	return injuries, rows.Err()
}

// DepthCharts returns depth chart entries for a team+season, optionally for
// a single week, ordered by position then depth_rank ascending.
func (r *StatsRepository) DepthCharts(ctx context.Context, team string, season int, week *int) ([]*store.DepthChartEntry, error) {
	query := `
		SELECT ` + depthChartColumns + `
		FROM depth_charts
		WHERE team = $1 AND season = $2`
	args := []interface{}{team, season}

	if week != nil {
		args = append(args, *week)
		query += fmt.Sprintf(" AND week = $%d", len(args))
	}

	query += " ORDER BY position, depth_rank"

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying depth charts: %w", err)
	}
	defer rows.Close()

	entries := []*store.DepthChartEntry{}
	for rows.Next() {
		e := &store.DepthChartEntry{}
		err := rows.Scan(&e.Team, &e.Season, &e.Week, &e.Position, &e.DepthRank, &e.PlayerID, &e.PlayerName)
		if err != nil {
			return nil, fmt.Errorf("scanning depth chart entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpsertSeasonStatsBatch inserts or updates season stats keyed by (team, season, week).
func (r *StatsRepository) UpsertSeasonStatsBatch(ctx context.Context, stats []*store.TeamSeasonStats) error {
	if len(stats) == 0 {
		return nil
	}

	const cols = 12
	args := make([]interface{}, 0, len(stats)*cols)
	for _, s := range stats {
		args = append(args,
			s.Team, s.Season, s.Week, s.Wins, s.Losses, s.Ties, s.PointsFor, s.PointsAgainst,
			s.OffEPA, s.DefEPA, s.ATSWins, s.ATSLosses,
		)
	}

	query := `
		INSERT INTO season_stats (` + seasonStatColumns + `)
		VALUES ` + valuesClause(len(stats), cols) + `
		ON CONFLICT (team, season, week) DO UPDATE SET
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			ties = EXCLUDED.ties,
			points_for = EXCLUDED.points_for,
			points_against = EXCLUDED.points_against,
			off_epa = EXCLUDED.off_epa,
			def_epa = EXCLUDED.def_epa,
			ats_wins = EXCLUDED.ats_wins,
			ats_losses = EXCLUDED.ats_losses`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting season stats: %w", err)
	}

	return nil
}

// UpsertPowerRatingsBatch inserts or updates ratings keyed by (team, season).
func (r *StatsRepository) UpsertPowerRatingsBatch(ctx context.Context, ratings []*store.PowerRating) error {
	if len(ratings) == 0 {
		return nil
	}

	const cols = 4
	args := make([]interface{}, 0, len(ratings)*cols)
	for _, pr := range ratings {
		args = append(args, pr.Team, pr.Season, pr.EloRating, pr.EloRank)
	}

	query := `
		INSERT INTO power_ratings (team, season, elo_rating, elo_rank)
		VALUES ` + valuesClause(len(ratings), cols) + `
		ON CONFLICT (team, season) DO UPDATE SET
			elo_rating = EXCLUDED.elo_rating,
			elo_rank = EXCLUDED.elo_rank`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting power ratings: %w", err)
	}

	return nil
}

// UpsertInjuriesBatch inserts or updates injuries. The conflict target is a
// unique index used only to keep loader retries idempotent; readers still
// tolerate duplicate report rows.
func (r *StatsRepository) UpsertInjuriesBatch(ctx context.Context, injuries []*store.Injury) error {
	if len(injuries) == 0 {
		return nil
	}

	const cols = 9
	args := make([]interface{}, 0, len(injuries)*cols)
	for _, inj := range injuries {
		args = append(args,
			inj.PlayerID, inj.PlayerName, inj.Team, inj.Season, inj.Week, inj.Position,
			inj.ReportStatus, inj.PrimaryInjury, inj.PracticeStatus,
		)
	}

	query := `
		INSERT INTO injuries (` + injuryColumns + `)
		VALUES ` + valuesClause(len(injuries), cols) + `
		ON CONFLICT (player_id, team, season, week) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			position = EXCLUDED.position,
			report_status = EXCLUDED.report_status,
			report_primary_injury = EXCLUDED.report_primary_injury,
			practice_status = EXCLUDED.practice_status`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting injuries: %w", err)
	}

	return nil
}

// UpsertDepthChartsBatch inserts or updates entries keyed by
// (team, season, week, position, depth_rank).
func (r *StatsRepository) UpsertDepthChartsBatch(ctx context.Context, entries []*store.DepthChartEntry) error {
	if len(entries) == 0 {
		return nil
	}

	const cols = 7
	args := make([]interface{}, 0, len(entries)*cols)
	for _, e := range entries {
		args = append(args, e.Team, e.Season, e.Week, e.Position, e.DepthRank, e.PlayerID, e.PlayerName)
	}

	query := `
		INSERT INTO depth_charts (` + depthChartColumns + `)
		VALUES ` + valuesClause(len(entries), cols) + `
		ON CONFLICT (team, season, week, position, depth_rank) DO UPDATE SET
			player_id = EXCLUDED.player_id,
			player_name = EXCLUDED.player_name`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting depth charts: %w", err)
	}

	return nil
}
