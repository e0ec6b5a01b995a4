package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

const playerColumns = `player_id, nfl_id, espn_id, full_name, position, team, status, college`

const playerStatColumns = `player_id, season, team, position, games,
		passing_yards, passing_tds, interceptions, rushing_yards, rushing_tds,
		receptions, receiving_yards, receiving_tds, fantasy_points`

// PlayerRepository handles player and player stat data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID finds a player by any of their known ID schemes
// (GSIS player_id, nfl_id, or espn_id).
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*store.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE player_id = $1 OR nfl_id = $1 OR espn_id = $1
		LIMIT 1`

	p := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&p.PlayerID, &p.NFLID, &p.ESPNID, &p.FullName, &p.Position, &p.Team, &p.Status, &p.College,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return p, nil
}

// ListStats returns player season stats with optional team/position filters.
func (r *PlayerRepository) ListStats(ctx context.Context, season int, team, position string) ([]*store.PlayerStat, error) {
	query := `
		SELECT ` + playerStatColumns + `
		FROM player_stats
		WHERE season = $1`
	args := []interface{}{season}

	if team != "" {
		args = append(args, team)
		query += fmt.Sprintf(" AND team = $%d", len(args))
	}
	if position != "" {
		args = append(args, position)
		query += fmt.Sprintf(" AND position = $%d", len(args))
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying player stats: %w", err)
	}
	defer rows.Close()

	stats := []*store.PlayerStat{}
	for rows.Next() {
		s := &store.PlayerStat{}
		err := rows.Scan(
			&s.PlayerID, &s.Season, &s.Team, &s.Position, &s.Games,
			&s.PassingYards, &s.PassingTDs, &s.Interceptions, &s.RushingYards, &s.RushingTDs,
			&s.Receptions, &s.ReceivingYards, &s.ReceivingTDs, &s.FantasyPoints,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player stat: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// UpsertBatch inserts or updates players keyed by player_id.
func (r *PlayerRepository) UpsertBatch(ctx context.Context, players []*store.Player) error {
	if len(players) == 0 {
		return nil
	}

	const cols = 8
	args := make([]interface{}, 0, len(players)*cols)
	for _, p := range players {
		args = append(args, p.PlayerID, p.NFLID, p.ESPNID, p.FullName, p.Position, p.Team, p.Status, p.College)
	}

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES ` + valuesClause(len(players), cols) + `
		ON CONFLICT (player_id) DO UPDATE SET
			nfl_id = EXCLUDED.nfl_id,
			espn_id = EXCLUDED.espn_id,
			full_name = EXCLUDED.full_name,
			position = EXCLUDED.position,
			team = EXCLUDED.team,
			status = EXCLUDED.status,
			college = EXCLUDED.college`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting players: %w", err)
	}

	return nil
}

// UpsertStatsBatch inserts or updates player stats keyed by (player_id, season).
func (r *PlayerRepository) UpsertStatsBatch(ctx context.Context, stats []*store.PlayerStat) error {
	if len(stats) == 0 {
		return nil
	}

	const cols = 14
	args := make([]interface{}, 0, len(stats)*cols)
	for _, s := range stats {
		args = append(args,
			s.PlayerID, s.Season, s.Team, s.Position, s.Games,
			s.PassingYards, s.PassingTDs, s.Interceptions, s.RushingYards, s.RushingTDs,
			s.Receptions, s.ReceivingYards, s.ReceivingTDs, s.FantasyPoints,
		)
	}

	query := `
		INSERT INTO player_stats (` + playerStatColumns + `)
		VALUES ` + valuesClause(len(stats), cols) + `
		ON CONFLICT (player_id, season) DO UPDATE SET
			team = EXCLUDED.team,
			position = EXCLUDED.position,
			games = EXCLUDED.games,
			passing_yards = EXCLUDED.passing_yards,
			passing_tds = EXCLUDED.passing_tds,
			interceptions = EXCLUDED.interceptions,
			rushing_yards = EXCLUDED.rushing_yards,
			rushing_tds = EXCLUDED.rushing_tds,
			receptions = EXCLUDED.receptions,
			receiving_yards = EXCLUDED.receiving_yards,
			receiving_tds = EXCLUDED.receiving_tds,
			fantasy_points = EXCLUDED.fantasy_points`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting player stats: %w", err)
	}

	return nil
}
