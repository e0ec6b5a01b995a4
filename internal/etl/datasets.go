package etl

import (
	"database/sql"

	"github.com/fortuna/gridiron/internal/store"
)

// Parquet row shapes for each dataset extract. Optional columns are
// pointers; the converters project them into the store models, casting
// moneylines from the extract's float encoding to int32.

type scheduleRow struct {
	GameID        string   `parquet:"game_id"`
	Season        int32    `parquet:"season"`
	Week          int32    `parquet:"week"`
	Gameday       string   `parquet:"gameday"`
	Gametime      *string  `parquet:"gametime,optional"`
	HomeTeam      string   `parquet:"home_team"`
	AwayTeam      string   `parquet:"away_team"`
	Stadium       *string  `parquet:"stadium,optional"`
	Roof          *string  `parquet:"roof,optional"`
	Temp          *int32   `parquet:"temp,optional"`
	Wind          *int32   `parquet:"wind,optional"`
	SpreadLine    *float64 `parquet:"spread_line,optional"`
	TotalLine     *float64 `parquet:"total_line,optional"`
	HomeMoneyline *float64 `parquet:"home_moneyline,optional"`
	AwayMoneyline *float64 `parquet:"away_moneyline,optional"`
	HomeScore     *int32   `parquet:"home_score,optional"`
	AwayScore     *int32   `parquet:"away_score,optional"`
	Result        *int32   `parquet:"result,optional"`
}

func (r scheduleRow) toModel() *store.Schedule {
	return &store.Schedule{
		GameID:        r.GameID,
		Season:        int(r.Season),
		Week:          int(r.Week),
		Gameday:       r.Gameday,
		Gametime:      nullStr(r.Gametime),
		HomeTeam:      r.HomeTeam,
		AwayTeam:      r.AwayTeam,
		Stadium:       nullStr(r.Stadium),
		Roof:          nullStr(r.Roof),
		Temp:          nullInt32(r.Temp),
		Wind:          nullInt32(r.Wind),
		SpreadLine:    nullFloat64(r.SpreadLine),
		TotalLine:     nullFloat64(r.TotalLine),
		HomeMoneyline: moneylineToInt32(r.HomeMoneyline),
		AwayMoneyline: moneylineToInt32(r.AwayMoneyline),
		HomeScore:     nullInt32(r.HomeScore),
		AwayScore:     nullInt32(r.AwayScore),
		Result:        nullInt32(r.Result),
	}
}

type playerRow struct {
	PlayerID string  `parquet:"player_id"`
	NFLID    *string `parquet:"nfl_id,optional"`
	ESPNID   *string `parquet:"espn_id,optional"`
	FullName string  `parquet:"full_name"`
	Position *string `parquet:"position,optional"`
	Team     *string `parquet:"team,optional"`
	Status   *string `parquet:"status,optional"`
	College  *string `parquet:"college,optional"`
}

func (r playerRow) toModel() *store.Player {
	return &store.Player{
		PlayerID: r.PlayerID,
		NFLID:    nullStr(r.NFLID),
		ESPNID:   nullStr(r.ESPNID),
		FullName: r.FullName,
		Position: nullStr(r.Position),
		Team:     nullStr(r.Team),
		Status:   nullStr(r.Status),
		College:  nullStr(r.College),
	}
}

type playerStatRow struct {
	PlayerID       string   `parquet:"player_id"`
	Season         int32    `parquet:"season"`
	Team           string   `parquet:"team"`
	Position       string   `parquet:"position"`
	Games          int32    `parquet:"games"`
	PassingYards   int32    `parquet:"passing_yards"`
	PassingTDs     int32    `parquet:"passing_tds"`
	Interceptions  int32    `parquet:"interceptions"`
	RushingYards   int32    `parquet:"rushing_yards"`
	RushingTDs     int32    `parquet:"rushing_tds"`
	Receptions     int32    `parquet:"receptions"`
	ReceivingYards int32    `parquet:"receiving_yards"`
	ReceivingTDs   int32    `parquet:"receiving_tds"`
	FantasyPoints  *float64 `parquet:"fantasy_points,optional"`
}

func (r playerStatRow) toModel() *store.PlayerStat {
	return &store.PlayerStat{
		PlayerID:       r.PlayerID,
		Season:         int(r.Season),
		Team:           r.Team,
		Position:       r.Position,
		Games:          int(r.Games),
		PassingYards:   int(r.PassingYards),
		PassingTDs:     int(r.PassingTDs),
		Interceptions:  int(r.Interceptions),
		RushingYards:   int(r.RushingYards),
		RushingTDs:     int(r.RushingTDs),
		Receptions:     int(r.Receptions),
		ReceivingYards: int(r.ReceivingYards),
		ReceivingTDs:   int(r.ReceivingTDs),
		FantasyPoints:  nullFloat64(r.FantasyPoints),
	}
}

type injuryRow struct {
	PlayerID       *string `parquet:"player_id,optional"`
	PlayerName     *string `parquet:"player_name,optional"`
	Team           string  `parquet:"team"`
	Season         int32   `parquet:"season"`
	Week           int32   `parquet:"week"`
	Position       *string `parquet:"position,optional"`
	ReportStatus   *string `parquet:"report_status,optional"`
	PrimaryInjury  *string `parquet:"report_primary_injury,optional"`
	PracticeStatus *string `parquet:"practice_status,optional"`
}

func (r injuryRow) toModel() *store.Injury {
	return &store.Injury{
		PlayerID:       nullStr(r.PlayerID),
		PlayerName:     nullStr(r.PlayerName),
		Team:           r.Team,
		Season:         int(r.Season),
		Week:           int(r.Week),
		Position:       nullStr(r.Position),
		ReportStatus:   nullStr(r.ReportStatus),
		PrimaryInjury:  nullStr(r.PrimaryInjury),
		PracticeStatus: nullStr(r.PracticeStatus),
	}
}

type depthChartRow struct {
	Team       string  `parquet:"team"`
	Season     int32   `parquet:"season"`
	Week       int32   `parquet:"week"`
	Position   string  `parquet:"position"`
	DepthRank  int32   `parquet:"depth_rank"`
	PlayerID   *string `parquet:"player_id,optional"`
	PlayerName *string `parquet:"player_name,optional"`
}

func (r depthChartRow) toModel() *store.DepthChartEntry {
	return &store.DepthChartEntry{
		Team:       r.Team,
		Season:     int(r.Season),
		Week:       int(r.Week),
		Position:   r.Position,
		DepthRank:  int(r.DepthRank),
		PlayerID:   nullStr(r.PlayerID),
		PlayerName: nullStr(r.PlayerName),
	}
}

type playRow struct {
	GameID      string   `parquet:"game_id"`
	PlayIndex   int32    `parquet:"play_index"`
	Quarter     *int32   `parquet:"quarter,optional"`
	Down        *int32   `parquet:"down,optional"`
	YardsToGo   *int32   `parquet:"yards_to_go,optional"`
	Posteam     *string  `parquet:"posteam,optional"`
	Defteam     *string  `parquet:"defteam,optional"`
	PlayType    *string  `parquet:"play_type,optional"`
	YardsGained *int32   `parquet:"yards_gained,optional"`
	EPA         *float64 `parquet:"epa,optional"`
	Description *string  `parquet:"description,optional"`
}

func (r playRow) toModel() *store.Play {
	return &store.Play{
		GameID:      r.GameID,
		PlayIndex:   int(r.PlayIndex),
		Quarter:     nullInt32(r.Quarter),
		Down:        nullInt32(r.Down),
		YardsToGo:   nullInt32(r.YardsToGo),
		Posteam:     nullStr(r.Posteam),
		Defteam:     nullStr(r.Defteam),
		PlayType:    nullStr(r.PlayType),
		YardsGained: nullInt32(r.YardsGained),
		EPA:         nullFloat64(r.EPA),
		Description: nullStr(r.Description),
	}
}

type seasonStatRow struct {
	Team          string   `parquet:"team"`
	Season        int32    `parquet:"season"`
	Week          int32    `parquet:"week"`
	Wins          int32    `parquet:"wins"`
	Losses        int32    `parquet:"losses"`
	Ties          int32    `parquet:"ties"`
	PointsFor     int32    `parquet:"points_for"`
	PointsAgainst int32    `parquet:"points_against"`
	OffEPA        *float64 `parquet:"off_epa,optional"`
	DefEPA        *float64 `parquet:"def_epa,optional"`
	ATSWins       int32    `parquet:"ats_wins"`
	ATSLosses     int32    `parquet:"ats_losses"`
}

func (r seasonStatRow) toModel() *store.TeamSeasonStats {
	return &store.TeamSeasonStats{
		Team:          r.Team,
		Season:        int(r.Season),
		Week:          int(r.Week),
		Wins:          int(r.Wins),
		Losses:        int(r.Losses),
		Ties:          int(r.Ties),
		PointsFor:     int(r.PointsFor),
		PointsAgainst: int(r.PointsAgainst),
		OffEPA:        nullFloat64(r.OffEPA),
		DefEPA:        nullFloat64(r.DefEPA),
		ATSWins:       int(r.ATSWins),
		ATSLosses:     int(r.ATSLosses),
	}
}

type powerRatingRow struct {
	Team      string  `parquet:"team"`
	Season    int32   `parquet:"season"`
	EloRating float64 `parquet:"elo_rating"`
	EloRank   int32   `parquet:"elo_rank"`
}

func (r powerRatingRow) toModel() *store.PowerRating {
	return &store.PowerRating{
		Team:      r.Team,
		Season:    int(r.Season),
		EloRating: r.EloRating,
		EloRank:   int(r.EloRank),
	}
}

func nullStr(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullInt32(p *int32) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *p, Valid: true}
}

func nullFloat64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// moneylineToInt32 casts odds from the extract's float encoding to the
// fixed-width signed integer the schema stores.
func moneylineToInt32(p *float64) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*p), Valid: true}
}

// referenceTeams is the static 32-team reference list loaded ahead of any
// dependent dataset.
var referenceTeams = []*store.Team{
	{Team: "ARI", TeamName: "Arizona Cardinals", Location: "Phoenix"},
	{Team: "ATL", TeamName: "Atlanta Falcons", Location: "Atlanta"},
	{Team: "BAL", TeamName: "Baltimore Ravens", Location: "Baltimore"},
	{Team: "BUF", TeamName: "Buffalo Bills", Location: "Buffalo"},
	{Team: "CAR", TeamName: "Carolina Panthers", Location: "Charlotte"},
	{Team: "CHI", TeamName: "Chicago Bears", Location: "Chicago"},
	{Team: "CIN", TeamName: "Cincinnati Bengals", Location: "Cincinnati"},
	{Team: "CLE", TeamName: "Cleveland Browns", Location: "Cleveland"},
	{Team: "DAL", TeamName: "Dallas Cowboys", Location: "Dallas"},
	{Team: "DEN", TeamName: "Denver Broncos", Location: "Denver"},
	{Team: "DET", TeamName: "Detroit Lions", Location: "Detroit"},
	{Team: "GB", TeamName: "Green Bay Packers", Location: "Green Bay"},
	{Team: "HOU", TeamName: "Houston Texans", Location: "Houston"},
	{Team: "IND", TeamName: "Indianapolis Colts", Location: "Indianapolis"},
	{Team: "JAX", TeamName: "Jacksonville Jaguars", Location: "Jacksonville"},
	{Team: "KC", TeamName: "Kansas City Chiefs", Location: "Kansas City"},
	{Team: "LA", TeamName: "Los Angeles Rams", Location: "Los Angeles"},
	{Team: "LAC", TeamName: "Los Angeles Chargers", Location: "Los Angeles"},
	{Team: "LV", TeamName: "Las Vegas Raiders", Location: "Las Vegas"},
	{Team: "MIA", TeamName: "Miami Dolphins", Location: "Miami"},
	{Team: "MIN", TeamName: "Minnesota Vikings", Location: "Minneapolis"},
	{Team: "NE", TeamName: "New England Patriots", Location: "Boston"},
	{Team: "NO", TeamName: "New Orleans Saints", Location: "New Orleans"},
	{Team: "NYG", TeamName: "New York Giants", Location: "New York"},
	{Team: "NYJ", TeamName: "New York Jets", Location: "New York"},
	{Team: "PHI", TeamName: "Philadelphia Eagles", Location: "Philadelphia"},
	{Team: "PIT", TeamName: "Pittsburgh Steelers", Location: "Pittsburgh"},
	{Team: "SEA", TeamName: "Seattle Seahawks", Location: "Seattle"},
	{Team: "SF", TeamName: "San Francisco 49ers", Location: "San Francisco"},
	{Team: "TB", TeamName: "Tampa Bay Buccaneers", Location: "Tampa Bay"},
	{Team: "TEN", TeamName: "Tennessee Titans", Location: "Nashville"},
	{Team: "WAS", TeamName: "Washington Commanders", Location: "Washington DC"},
}
