package repository

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/store"
)

func newMockDB(t *testing.T) (*store.Database, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return store.NewDatabaseWithConn(conn), mock
}

var scheduleCols = []string{
	"game_id", "season", "week", "gameday", "gametime", "home_team", "away_team",
	"stadium", "roof", "temp", "wind", "spread_line", "total_line",
	"home_moneyline", "away_moneyline", "home_score", "away_score", "result",
}

func scheduleValues(gameID string, season, week int, gameday, home, away string) []driver.Value {
	return []driver.Value{
		gameID, season, week, gameday, "13:00", home, away,
		"Arrowhead Stadium", "outdoors", 72, 5, -3.5, 47.5,
		-180, 155, nil, nil, nil,
	}
}

func scheduleRows(mock sqlmock.Sqlmock, values ...[]driver.Value) *sqlmock.Rows {
	rows := mock.NewRows(scheduleCols)
	for _, v := range values {
		rows.AddRow(v...)
	}
	return rows
}
