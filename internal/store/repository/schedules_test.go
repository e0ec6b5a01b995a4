package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
)

func TestScheduleListSeasonOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE season = $1")).
		WithArgs(2025).
		WillReturnRows(scheduleRows(mock,
			scheduleValues("2025_01_KC_LAC", 2025, 1, "2025-09-05", "KC", "LAC"),
			scheduleValues("2025_02_KC_PHI", 2025, 2, "2025-09-14", "KC", "PHI"),
		))

	schedules, err := repo.List(context.Background(), 2025, nil, "")
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, "2025_01_KC_LAC", schedules[0].GameID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleListWeekAndTeamFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("AND week = $2 AND (home_team = $3 OR away_team = $3)")).
		WithArgs(2025, 1, "KC").
		WillReturnRows(scheduleRows(mock,
			scheduleValues("2025_01_KC_LAC", 2025, 1, "2025-09-05", "KC", "LAC"),
		))

	schedules, err := repo.List(context.Background(), 2025, intPtr(1), "KC")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleListEmptyResultIsNonNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE season = $1")).
		WithArgs(1999).
		WillReturnRows(scheduleRows(mock))

	schedules, err := repo.List(context.Background(), 1999, nil, "")
	require.NoError(t, err)
	assert.NotNil(t, schedules)
	assert.Empty(t, schedules)
}

func TestScheduleGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE game_id = $1")).
		WithArgs("nope").
		WillReturnRows(scheduleRows(mock))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestScheduleByDateOrdersByKickoff(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE gameday = $1")).
		WithArgs("2025-09-05").
		WillReturnRows(scheduleRows(mock,
			scheduleValues("2025_01_KC_LAC", 2025, 1, "2025-09-05", "KC", "LAC"),
		))

	games, err := repo.ByDate(context.Background(), "2025-09-05")
	require.NoError(t, err)
	require.Len(t, games, 1)
}

func TestScheduleSeasons(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT season FROM schedules")).
		WillReturnRows(mock.NewRows([]string{"season"}).AddRow(2024).AddRow(2025))

	seasons, err := repo.Seasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, seasons)
}

func TestScheduleUpsertBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	schedules := []*store.Schedule{
		{GameID: "2025_01_KC_LAC", Season: 2025, Week: 1, Gameday: "2025-09-05", HomeTeam: "KC", AwayTeam: "LAC"},
		{GameID: "2025_01_DAL_PHI", Season: 2025, Week: 1, Gameday: "2025-09-04", HomeTeam: "PHI", AwayTeam: "DAL"},
	}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (game_id) DO UPDATE")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.UpsertBatch(context.Background(), schedules))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleUpsertBatchEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewScheduleRepository(db)

	require.NoError(t, repo.UpsertBatch(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func intPtr(n int) *int {
	return &n
}
