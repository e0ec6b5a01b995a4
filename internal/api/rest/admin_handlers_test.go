package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doAdminPost(t *testing.T, srv *Server, body string, key string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestAdminMissingKeyUnauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doAdminPost(t, srv, `{"action":"load_schedules"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminWrongKeyForbidden(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doAdminPost(t, srv, `{"action":"load_schedules"}`, "wrong-key")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminUnknownActionRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doAdminPost(t, srv, `{"action":"drop_tables"}`, testAdminKey)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Valid actions")
	assert.Contains(t, body["error"], "refresh_all")
}

func TestAdminCreateJobQueued(t *testing.T) {
	srv, mock := newTestServer(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO jobs")).
		WillReturnRows(mock.NewRows([]string{
			"job_id", "action", "season", "status", "message", "records",
			"last_error", "created_at", "started_at", "completed_at", "updated_at",
		}).AddRow(
			"3f1b9a54-7c2e-4f6d-9a1b-0c8d7e6f5a4b", "load_schedules", 2025, "queued",
			nil, 0, nil, now, nil, nil, now,
		))

	rec := doAdminPost(t, srv, `{"action":"load_schedules","params":{"season":2025}}`, testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)

	var body createJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "3f1b9a54-7c2e-4f6d-9a1b-0c8d7e6f5a4b", body.JobID)
	assert.Equal(t, "queued", body.Status)
	assert.Equal(t, "load_schedules", body.Action)
	assert.NotEmpty(t, body.CreatedAt)
}

func TestAdminGetJobNotFound(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE job_id = $1")).
		WithArgs("missing").
		WillReturnRows(mock.NewRows([]string{"job_id"}))

	rec := doRequest(t, srv, http.MethodGet, "/v1/admin/jobs/missing",
		map[string]string{"X-API-Key": testAdminKey})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminInvalidBodyRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doAdminPost(t, srv, `{not json`, testAdminKey)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
