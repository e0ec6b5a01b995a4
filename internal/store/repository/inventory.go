package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// DataTables lists the queryable dataset tables in load-dependency order.
var DataTables = []string{
	"teams",
	"schedules",
	"season_stats",
	"power_ratings",
	"players",
	"player_stats",
	"injuries",
	"depth_charts",
	"play_by_play",
}

// InventoryRepository reports row counts for the dataset tables.
type InventoryRepository struct {
	db *store.Database
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *store.Database) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Counts returns the row count of every dataset table.
func (r *InventoryRepository) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(DataTables))

	for _, table := range DataTables {
		var count int64
		// Table names come from the fixed DataTables list, never from input.
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := r.db.DB().QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
