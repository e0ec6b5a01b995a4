package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/jobs"
	"github.com/fortuna/gridiron/internal/store"
)

const testAdminKey = "test-admin-key"

// newTestServer wires the full router against a mocked database and a real
// in-process Redis. The jobs worker is never started.
func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	mr := miniredis.RunT(t)
	c, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	db := store.NewDatabaseWithConn(conn)
	jobsSvc := jobs.NewService(db, c, t.TempDir(), 2025, nil)

	srv := NewServer(Config{
		Port:          "0",
		AdminAPIKey:   testAdminKey,
		CurrentSeason: 2025,
		Environment:   "test",
	}, db, c, jobsSvc)

	return srv, mock
}

func doRequest(t *testing.T, srv *Server, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestOptionalStrAbsentVsEmpty(t *testing.T) {
	assert.Nil(t, optionalStr(""))
	assert.Equal(t, "KC", optionalStr("KC"))

	// An unfiltered request keeps the explicit absent marker in its key.
	assert.Equal(t, "schedules:2025:none:none",
		cache.Key("schedules", 2025, (*int)(nil), optionalStr("")))
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestGetTeamsCacheAside(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams")).
		WillReturnRows(mock.NewRows([]string{"team", "team_name", "location"}).
			AddRow("KC", "Kansas City Chiefs", "Kansas City"))

	// First request misses and populates the cache.
	rec := doRequest(t, srv, http.MethodGet, "/v1/teams", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Contains(t, rec.Body.String(), "Kansas City Chiefs")

	// Second request is served from cache; no further db expectation is set,
	// so a second query would fail the test.
	rec = doRequest(t, srv, http.MethodGet, "/v1/teams", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Contains(t, rec.Body.String(), "Kansas City Chiefs")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTeamStatsAbsentRendersEmptyObject(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM season_stats")).
		WithArgs("KC", 2025).
		WillReturnRows(mock.NewRows([]string{"team"}))

	rec := doRequest(t, srv, http.MethodGet, "/v1/teams/KC/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", strings.TrimSpace(rec.Body.String()))
}

func TestGetSchedulesUnknownSeasonRejected(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT season FROM schedules")).
		WillReturnRows(mock.NewRows([]string{"season"}).AddRow(2025))

	rec := doRequest(t, srv, http.MethodGet, "/v1/schedules?season=1999", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "1999")
	assert.EqualValues(t, http.StatusBadRequest, body["status"])
}

func TestGetSchedulesInvalidWeekParam(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/v1/schedules?week=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPBPValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing game_id", "/v1/pbp"},
		{"limit above cap", "/v1/pbp?game_id=2025_01_KC_LAC&limit=501"},
		{"negative offset", "/v1/pbp?game_id=2025_01_KC_LAC&offset=-1"},
		{"zero limit", "/v1/pbp?game_id=2025_01_KC_LAC&limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetPBPPage(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM play_by_play")).
		WithArgs("2025_01_KC_LAC").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs("2025_01_KC_LAC", 100, 0).
		WillReturnRows(mock.NewRows([]string{
			"game_id", "play_index", "quarter", "down", "yards_to_go", "posteam", "defteam",
			"play_type", "yards_gained", "epa", "description",
		}))

	rec := doRequest(t, srv, http.MethodGet, "/v1/pbp?game_id=2025_01_KC_LAC", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Total  int           `json:"total"`
		Plays  []interface{} `json:"plays"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Plays)
	assert.Equal(t, 100, page.Limit)
	assert.Zero(t, page.Offset)
}

func TestGetGameNotFound(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE game_id = $1")).
		WithArgs("unknown").
		WillReturnRows(mock.NewRows(scheduleTestCols))

	rec := doRequest(t, srv, http.MethodGet, "/v1/games/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetScoreboardRequiresDate(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/v1/scoreboard", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/v1/scoreboard?date=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDepthChartsRequiresTeam(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/v1/depth_charts", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

var scheduleTestCols = []string{
	"game_id", "season", "week", "gameday", "gametime", "home_team", "away_team",
	"stadium", "roof", "temp", "wind", "spread_line", "total_line",
	"home_moneyline", "away_moneyline", "home_score", "away_score", "result",
}
