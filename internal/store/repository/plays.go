package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

const playColumns = `game_id, play_index, quarter, down, yards_to_go, posteam, defteam,
		play_type, yards_gained, epa, description`

// PlayRepository handles play-by-play data access
type PlayRepository struct {
	db *store.Database
}

// NewPlayRepository creates a new play repository
func NewPlayRepository(db *store.Database) *PlayRepository {
	return &PlayRepository{db: db}
}

// CountByGame returns the total number of plays recorded for a game.
func (r *PlayRepository) CountByGame(ctx context.Context, gameID string) (int, error) {
	var total int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM play_by_play WHERE game_id = $1`, gameID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("counting plays: %w", err)
	}

	return total, nil
}

// Page returns one page of plays ordered by play_index ascending.
func (r *PlayRepository) Page(ctx context.Context, gameID string, limit, offset int) ([]*store.Play, error) {
	query := `
		SELECT ` + playColumns + `
		FROM play_by_play
		WHERE game_id = $1
		ORDER BY play_index
		LIMIT $2 OFFSET $3`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	return scanPlays(rows)
}

// Sample returns up to n plays from the start of a game in chronological order.
func (r *PlayRepository) Sample(ctx context.Context, gameID string, n int) ([]*store.Play, error) {
	query := `
		SELECT ` + playColumns + `
		FROM play_by_play
		WHERE game_id = $1
		ORDER BY play_index
		LIMIT $2`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID, n)
	if err != nil {
		return nil, fmt.Errorf("querying play sample: %w", err)
	}
	defer rows.Close()

	return scanPlays(rows)
}

// UpsertBatch inserts or updates plays keyed by (game_id, play_index).
func (r *PlayRepository) UpsertBatch(ctx context.Context, plays []*store.Play) error {
	if len(plays) == 0 {
		return nil
	}

	const cols = 11
	args := make([]interface{}, 0, len(plays)*cols)
	for _, p := range plays {
		args = append(args,
			p.GameID, p.PlayIndex, p.Quarter, p.Down, p.YardsToGo, p.Posteam, p.Defteam,
			p.PlayType, p.YardsGained, p.EPA, p.Description,
		)
	}

	query := `
		INSERT INTO play_by_play (` + playColumns + `)
		VALUES ` + valuesClause(len(plays), cols) + `
		ON CONFLICT (game_id, play_index) DO UPDATE SET
			quarter = EXCLUDED.quarter,
			down = EXCLUDED.down,
			yards_to_go = EXCLUDED.yards_to_go,
			posteam = EXCLUDED.posteam,
			defteam = EXCLUDED.defteam,
			play_type = EXCLUDED.play_type,
			yards_gained = EXCLUDED.yards_gained,
			epa = EXCLUDED.epa,
			description = EXCLUDED.description`

	if _, err := r.db.DB().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting plays: %w", err)
	}

	return nil
}

// scanPlays scans multiple play rows
func scanPlays(rows *sql.Rows) ([]*store.Play, error) {
	plays := []*store.Play{}
	for rows.Next() {
		p := &store.Play{}
		err := rows.Scan(
			&p.GameID, &p.PlayIndex, &p.Quarter, &p.Down, &p.YardsToGo, &p.Posteam, &p.Defteam,
			&p.PlayType, &p.YardsGained, &p.EPA, &p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning play: %w", err)
		}
		plays = append(plays, p)
	}

	return plays, rows.Err()
}
