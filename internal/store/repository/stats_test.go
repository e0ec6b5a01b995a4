package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
)

var seasonStatCols = []string{
	"team", "season", "week", "wins", "losses", "ties", "points_for", "points_against",
	"off_epa", "def_epa", "ats_wins", "ats_losses",
}

func seasonStatValues(team string, season, week, wins int) []driver.Value {
	return []driver.Value{team, season, week, wins, week - wins, 0, 250, 180, 0.12, -0.05, wins, week - wins}
}

func TestTeamSeasonLatestWeekWhenWeekOmitted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY week DESC LIMIT 1")).
		WithArgs("KC", 2025).
		WillReturnRows(mock.NewRows(seasonStatCols).AddRow(seasonStatValues("KC", 2025, 12, 10)...))

	stats, err := repo.TeamSeason(context.Background(), "KC", 2025, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Week)
	assert.Equal(t, 10, stats.Wins)
}

func TestTeamSeasonExplicitWeek(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("AND week = $3 LIMIT 1")).
		WithArgs("KC", 2025, 5).
		WillReturnRows(mock.NewRows(seasonStatCols).AddRow(seasonStatValues("KC", 2025, 5, 4)...))

	stats, err := repo.TeamSeason(context.Background(), "KC", 2025, intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Week)
}

func TestTeamSeasonNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM season_stats")).
		WithArgs("XXX", 2025).
		WillReturnRows(mock.NewRows(seasonStatCols))

	_, err := repo.TeamSeason(context.Background(), "XXX", 2025, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPowerRatingsOrderedByRank(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY elo_rank")).
		WithArgs(2025).
		WillReturnRows(mock.NewRows([]string{"team", "season", "elo_rating", "elo_rank"}).
			AddRow("KC", 2025, 1702.4, 1).
			AddRow("PHI", 2025, 1688.1, 2))

	ratings, err := repo.PowerRatings(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, 1, ratings[0].EloRank)
	assert.Equal(t, "KC", ratings[0].Team)
}

func TestInjuriesOptionalFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	injuryCols := []string{
		"player_id", "player_name", "team", "season", "week", "position",
		"report_status", "report_primary_injury", "practice_status",
	}

	mock.ExpectQuery(regexp.QuoteMeta("AND week = $2 AND team = $3")).
		WithArgs(2025, 3, "KC").
		WillReturnRows(mock.NewRows(injuryCols).
			AddRow("00-0033873", "Patrick Mahomes", "KC", 2025, 3, "QB", "Questionable", "Ankle", "Limited"))

	injuries, err := repo.Injuries(context.Background(), 2025, intPtr(3), "KC")
	require.NoError(t, err)
	require.Len(t, injuries, 1)
	assert.Equal(t, "Questionable", injuries[0].ReportStatus.String)
}

func TestDepthChartsOrdering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	cols := []string{"team", "season", "week", "position", "depth_rank", "player_id", "player_name"}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY position, depth_rank")).
		WithArgs("KC", 2025).
		WillReturnRows(mock.NewRows(cols).
			AddRow("KC", 2025, 1, "QB", 1, "00-0033873", "Patrick Mahomes").
			AddRow("KC", 2025, 1, "QB", 2, "00-0036389", "Gardner Minshew"))

	entries, err := repo.DepthCharts(context.Background(), "KC", 2025, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].DepthRank)
}

func TestUpsertInjuriesBatchRetryIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	// Reports without a player_id must still route through the upsert's
	// conflict clause on retry; the injuries unique index is declared
	// NULLS NOT DISTINCT so these rows conflict instead of re-inserting.
	batch := []*store.Injury{
		{Team: "KC", Season: 2025, Week: 3, PlayerName: sql.NullString{String: "Unlisted Player", Valid: true}},
	}

	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (player_id, team, season, week) DO UPDATE")).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.UpsertInjuriesBatch(context.Background(), batch))
	require.NoError(t, repo.UpsertInjuriesBatch(context.Background(), batch))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSeasonStatsBatchConflictTarget(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (team, season, week) DO UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSeasonStatsBatch(context.Background(), []*store.TeamSeasonStats{
		{Team: "KC", Season: 2025, Week: 1, Wins: 1},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
