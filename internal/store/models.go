package store

import (
	"database/sql"
)

// Schedule represents a single NFL game row from the schedules table.
// GameID is the natural key (YYYY_WW_AWAY_HOME convention).
type Schedule struct {
	GameID        string          `json:"game_id" db:"game_id"`
	Season        int             `json:"season" db:"season"`
	Week          int             `json:"week" db:"week"`
	Gameday       string          `json:"gameday" db:"gameday"`
	Gametime      sql.NullString  `json:"gametime" db:"gametime"`
	HomeTeam      string          `json:"home_team" db:"home_team"`
	AwayTeam      string          `json:"away_team" db:"away_team"`
	Stadium       sql.NullString  `json:"stadium" db:"stadium"`
	Roof          sql.NullString  `json:"roof" db:"roof"`
	Temp          sql.NullInt32   `json:"temp" db:"temp"`
	Wind          sql.NullInt32   `json:"wind" db:"wind"`
	SpreadLine    sql.NullFloat64 `json:"spread_line" db:"spread_line"`
	TotalLine     sql.NullFloat64 `json:"total_line" db:"total_line"`
	HomeMoneyline sql.NullInt32   `json:"home_moneyline" db:"home_moneyline"`
	AwayMoneyline sql.NullInt32   `json:"away_moneyline" db:"away_moneyline"`
	HomeScore     sql.NullInt32   `json:"home_score" db:"home_score"`
	AwayScore     sql.NullInt32   `json:"away_score" db:"away_score"`
	Result        sql.NullInt32   `json:"result" db:"result"`
}

// Team represents static team reference data.
type Team struct {
	Team     string `json:"team" db:"team"`
	TeamName string `json:"team_name" db:"team_name"`
	Location string `json:"location" db:"location"`
}

// TeamSeasonStats holds one row per team per week of a season.
type TeamSeasonStats struct {
	Team          string          `json:"team" db:"team"`
	Season        int             `json:"season" db:"season"`
	Week          int             `json:"week" db:"week"`
	Wins          int             `json:"wins" db:"wins"`
	Losses        int             `json:"losses" db:"losses"`
	Ties          int             `json:"ties" db:"ties"`
	PointsFor     int             `json:"points_for" db:"points_for"`
	PointsAgainst int             `json:"points_against" db:"points_against"`
	OffEPA        sql.NullFloat64 `json:"off_epa" db:"off_epa"`
	DefEPA        sql.NullFloat64 `json:"def_epa" db:"def_epa"`
	ATSWins       int             `json:"ats_wins" db:"ats_wins"`
	ATSLosses     int             `json:"ats_losses" db:"ats_losses"`
}

// PowerRating is a team strength rating for a season. Rank 1 = strongest.
type PowerRating struct {
	Team      string  `json:"team" db:"team"`
	Season    int     `json:"season" db:"season"`
	EloRating float64 `json:"elo_rating" db:"elo_rating"`
	EloRank   int     `json:"elo_rank" db:"elo_rank"`
}

// Player carries roster metadata. PlayerID is the primary identifier;
// nfl_id and espn_id are alternate external ID schemes for the same player.
type Player struct {
	PlayerID string         `json:"player_id" db:"player_id"`
	NFLID    sql.NullString `json:"nfl_id" db:"nfl_id"`
	ESPNID   sql.NullString `json:"espn_id" db:"espn_id"`
	FullName string         `json:"full_name" db:"full_name"`
	Position sql.NullString `json:"position" db:"position"`
	Team     sql.NullString `json:"team" db:"team"`
	Status   sql.NullString `json:"status" db:"status"`
	College  sql.NullString `json:"college" db:"college"`
}

// PlayerStat holds season-level totals for a player.
type PlayerStat struct {
	PlayerID       string          `json:"player_id" db:"player_id"`
	Season         int             `json:"season" db:"season"`
	Team           string          `json:"team" db:"team"`
	Position       string          `json:"position" db:"position"`
	Games          int             `json:"games" db:"games"`
	PassingYards   int             `json:"passing_yards" db:"passing_yards"`
	PassingTDs     int             `json:"passing_tds" db:"passing_tds"`
	Interceptions  int             `json:"interceptions" db:"interceptions"`
	RushingYards   int             `json:"rushing_yards" db:"rushing_yards"`
	RushingTDs     int             `json:"rushing_tds" db:"rushing_tds"`
	Receptions     int             `json:"receptions" db:"receptions"`
	ReceivingYards int             `json:"receiving_yards" db:"receiving_yards"`
	ReceivingTDs   int             `json:"receiving_tds" db:"receiving_tds"`
	FantasyPoints  sql.NullFloat64 `json:"fantasy_points" db:"fantasy_points"`
}

// Injury is a weekly injury report entry. Duplicates are possible; readers
// return all matching rows.
type Injury struct {
	PlayerID       sql.NullString `json:"player_id" db:"player_id"`
	PlayerName     sql.NullString `json:"player_name" db:"player_name"`
	Team           string         `json:"team" db:"team"`
	Season         int            `json:"season" db:"season"`
	Week           int            `json:"week" db:"week"`
	Position       sql.NullString `json:"position" db:"position"`
	ReportStatus   sql.NullString `json:"report_status" db:"report_status"`
	PrimaryInjury  sql.NullString `json:"report_primary_injury" db:"report_primary_injury"`
	PracticeStatus sql.NullString `json:"practice_status" db:"practice_status"`
}

// DepthChartEntry places a player at a depth rank for a position.
type DepthChartEntry struct {
	Team       string         `json:"team" db:"team"`
	Season     int            `json:"season" db:"season"`
	Week       int            `json:"week" db:"week"`
	Position   string         `json:"position" db:"position"`
	DepthRank  int            `json:"depth_rank" db:"depth_rank"`
	PlayerID   sql.NullString `json:"player_id" db:"player_id"`
	PlayerName sql.NullString `json:"player_name" db:"player_name"`
}

// Play is a single play-by-play row. PlayIndex is monotonically increasing
// within a game and defines chronological order.
type Play struct {
	GameID      string          `json:"game_id" db:"game_id"`
	PlayIndex   int             `json:"play_index" db:"play_index"`
	Quarter     sql.NullInt32   `json:"quarter" db:"quarter"`
	Down        sql.NullInt32   `json:"down" db:"down"`
	YardsToGo   sql.NullInt32   `json:"yards_to_go" db:"yards_to_go"`
	Posteam     sql.NullString  `json:"posteam" db:"posteam"`
	Defteam     sql.NullString  `json:"defteam" db:"defteam"`
	PlayType    sql.NullString  `json:"play_type" db:"play_type"`
	YardsGained sql.NullInt32   `json:"yards_gained" db:"yards_gained"`
	EPA         sql.NullFloat64 `json:"epa" db:"epa"`
	Description sql.NullString  `json:"description" db:"description"`
}
