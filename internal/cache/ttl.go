package cache

import "time"

// Per-resource TTLs, chosen by data volatility. The scoreboard updates near
// real time while power ratings and player profiles change weekly at most.
const (
	TTLTeams         = 300 * time.Second
	TTLSchedules     = 60 * time.Second
	TTLTeamStats     = 60 * time.Second
	TTLPowerRatings  = 3600 * time.Second
	TTLPlayerProfile = 3600 * time.Second
	TTLPlayerStats   = 300 * time.Second
	TTLInjuries      = 60 * time.Second
	TTLDepthCharts   = 300 * time.Second
	TTLPlayByPlay    = 60 * time.Second
	TTLScoreboard    = 10 * time.Second
	TTLGameDetail    = 60 * time.Second
	TTLInventory     = 3600 * time.Second
)
