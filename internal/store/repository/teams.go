package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// TeamRepository handles team reference data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns all teams ordered by abbreviation
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := `
		SELECT team, team_name, location
		FROM teams
		ORDER BY team`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	teams := []*store.Team{}
	for rows.Next() {
		team := &store.Team{}
		if err := rows.Scan(&team.Team, &team.TeamName, &team.Location); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByAbbr finds a team by its abbreviation code
func (r *TeamRepository) GetByAbbr(ctx context.Context, abbr string) (*store.Team, error) {
	query := `
		SELECT team, team_name, location
		FROM teams
		WHERE team = $1`

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, abbr).Scan(&team.Team, &team.TeamName, &team.Location)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// UpsertBatch inserts or updates teams keyed by abbreviation.
func (r *TeamRepository) UpsertBatch(ctx context.Context, teams []*store.Team) error {
	if len(teams) == 0 {
		return nil
	}

	const cols = 3
	args := make([]interface{}, 0, len(teams)*cols)
	for _, t := range teams {
		args = append(args, t.Team, t.TeamName, t.Location)
	}

	query := `
		INSERT INTO teams (team, team_name, location)
		VALUES ` + valuesClause(len(teams), cols) + `
		ON CONFLICT (team) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			location = EXCLUDED.location`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting teams: %w", err)
	}

	return nil
}
