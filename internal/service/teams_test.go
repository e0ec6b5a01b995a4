package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
)

// newMockDB disables ordered matching because Profile issues its queries
// concurrently.
func newMockDB(t *testing.T) (*store.Database, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	mock.MatchExpectationsInOrder(false)

	return store.NewDatabaseWithConn(conn), mock
}

var scheduleCols = []string{
	"game_id", "season", "week", "gameday", "gametime", "home_team", "away_team",
	"stadium", "roof", "temp", "wind", "spread_line", "total_line",
	"home_moneyline", "away_moneyline", "home_score", "away_score", "result",
}

func TestProfileComposesWithMissingStats(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTeamService(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams")).
		WithArgs("KC").
		WillReturnRows(mock.NewRows([]string{"team", "team_name", "location"}).
			AddRow("KC", "Kansas City Chiefs", "Kansas City"))

	// No stats row loaded yet; the profile leaves the field nil.
	mock.ExpectQuery(regexp.QuoteMeta("FROM season_stats")).
		WithArgs("KC", 2025).
		WillReturnRows(mock.NewRows([]string{"team"}))

	mock.ExpectQuery(regexp.QuoteMeta("FROM power_ratings")).
		WithArgs("KC", 2025).
		WillReturnRows(mock.NewRows([]string{"team", "season", "elo_rating", "elo_rank"}).
			AddRow("KC", 2025, 1702.4, 1))

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules")).
		WithArgs(2025, "KC").
		WillReturnRows(mock.NewRows(scheduleCols))

	profile, err := svc.Profile(context.Background(), "KC", 2025)
	require.NoError(t, err)

	require.NotNil(t, profile.TeamInfo)
	assert.Equal(t, "Kansas City Chiefs", profile.TeamInfo.TeamName)
	assert.Nil(t, profile.Stats)
	require.NotNil(t, profile.PowerRating)
	assert.Equal(t, 1, profile.PowerRating.EloRank)
	assert.NotNil(t, profile.Schedule)
}

func TestProfileUnknownTeam(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTeamService(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams")).
		WithArgs("XXX").
		WillReturnRows(mock.NewRows([]string{"team", "team_name", "location"}))

	// The sibling reads may or may not run before cancellation.
	mock.ExpectQuery(regexp.QuoteMeta("FROM season_stats")).
		WillReturnRows(mock.NewRows([]string{"team"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM power_ratings")).
		WillReturnRows(mock.NewRows([]string{"team", "season", "elo_rating", "elo_rank"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules")).
		WillReturnRows(mock.NewRows(scheduleCols))

	_, err := svc.Profile(context.Background(), "XXX", 2025)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestValidationErrors(t *testing.T) {
	err := Validationf("season %d is not available", 1999)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "1999")

	assert.False(t, IsValidation(context.Canceled))
	assert.False(t, IsValidation(nil))
}
