package service

import (
	"context"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// TableInfo describes one dataset table in the inventory document.
type TableInfo struct {
	Records     int64  `json:"records"`
	Description string `json:"description"`
	Updated     string `json:"updated"`
}

// Inventory is the data availability document served by /v1/data/inventory.
type Inventory struct {
	TotalDatasets int                  `json:"total_datasets"`
	Seasons       []int                `json:"seasons"`
	Tables        map[string]TableInfo `json:"tables"`
	TotalRecords  int64                `json:"total_records"`
}

// tableDescriptions carries the static metadata half of the inventory;
// counts are queried live.
var tableDescriptions = map[string]struct {
	description string
	updated     string
}{
	"teams":         {"NFL team metadata", "static"},
	"schedules":     {"Game schedules with betting lines", "daily"},
	"season_stats":  {"Weekly team statistics", "weekly"},
	"power_ratings": {"ELO ratings for all teams", "weekly"},
	"players":       {"Player roster data", "weekly"},
	"player_stats":  {"Individual player statistics", "weekly"},
	"injuries":      {"Injury reports by week", "daily_wed_fri"},
	"depth_charts":  {"Team depth charts by week", "weekly"},
	"play_by_play":  {"Play-by-play data with EPA", "weekly"},
}

// InventoryService assembles the data inventory document.
type InventoryService struct {
	inventory *repository.InventoryRepository
	schedules *repository.ScheduleRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *store.Database) *InventoryService {
	return &InventoryService{
		inventory: repository.NewInventoryRepository(db),
		schedules: repository.NewScheduleRepository(db),
	}
}

// Inventory returns live row counts plus refresh cadence metadata.
func (s *InventoryService) Inventory(ctx context.Context) (*Inventory, error) {
	counts, err := s.inventory.Counts(ctx)
	if err != nil {
		return nil, err
	}

	seasons, err := s.schedules.Seasons(ctx)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{
		TotalDatasets: len(repository.DataTables),
		Seasons:       seasons,
		Tables:        make(map[string]TableInfo, len(repository.DataTables)),
	}

	for _, table := range repository.DataTables {
		meta := tableDescriptions[table]
		inv.Tables[table] = TableInfo{
			Records:     counts[table],
			Description: meta.description,
			Updated:     meta.updated,
		}
		inv.TotalRecords += counts[table]
	}

	return inv, nil
}
