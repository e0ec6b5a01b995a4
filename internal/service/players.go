package service

import (
	"context"

	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// PlayerService reads player profiles and season stats.
type PlayerService struct {
	players *repository.PlayerRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		players: repository.NewPlayerRepository(db),
	}
}

// Player returns a single player profile looked up by any known ID scheme.
func (s *PlayerService) Player(ctx context.Context, playerID string) (*store.Player, error) {
	if playerID == "" {
		return nil, Validationf("player_id is required")
	}

	return s.players.GetByID(ctx, playerID)
}

// PlayerStats returns season stats with optional team/position filters.
func (s *PlayerService) PlayerStats(ctx context.Context, season int, team, position string) ([]*store.PlayerStat, error) {
	return s.players.ListStats(ctx, season, team, position)
}
