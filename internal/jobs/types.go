package jobs

import (
	"database/sql"
	"time"
)

// Job statuses.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Admin actions that can be queued.
const (
	ActionRefreshSeasonStats  = "refresh_season_stats"
	ActionRefreshPowerRatings = "refresh_power_ratings"
	ActionLoadSchedules       = "load_schedules"
	ActionLoadPlayerStats     = "load_player_stats"
	ActionLoadPBP             = "load_pbp"
	ActionLoadInjuries        = "load_injuries"
	ActionLoadDepthCharts     = "load_depth_charts"
	ActionRefreshAll          = "refresh_all"
)

// Actions lists every valid admin action in a stable order.
var Actions = []string{
	ActionRefreshSeasonStats,
	ActionRefreshPowerRatings,
	ActionLoadSchedules,
	ActionLoadPlayerStats,
	ActionLoadPBP,
	ActionLoadInjuries,
	ActionLoadDepthCharts,
	ActionRefreshAll,
}

// ValidAction reports whether action is a known admin action.
func ValidAction(action string) bool {
	for _, a := range Actions {
		if a == action {
			return true
		}
	}
	return false
}

// Job is one queued admin data-load job.
type Job struct {
	JobID       string         `json:"job_id" db:"job_id"`
	Action      string         `json:"action" db:"action"`
	Season      sql.NullInt32  `json:"season" db:"season"`
	Status      string         `json:"status" db:"status"`
	Message     sql.NullString `json:"message" db:"message"`
	Records     int            `json:"records" db:"records"`
	LastError   sql.NullString `json:"last_error" db:"last_error"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	StartedAt   sql.NullTime   `json:"started_at" db:"started_at"`
	CompletedAt sql.NullTime   `json:"completed_at" db:"completed_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
