package etl

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// BatchSize is the number of rows sent per upsert statement.
const BatchSize = 1000

// Load outcome statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Result reports the outcome of loading one dataset.
type Result struct {
	Dataset string `json:"dataset"`
	Status  string `json:"status"`
	Records int    `json:"records_inserted"`
	Reason  string `json:"reason,omitempty"`
}

func failure(dataset, reason string) Result {
	return Result{Dataset: dataset, Status: StatusFailed, Reason: reason}
}

// RunSummary reports a full-season load across all datasets.
type RunSummary struct {
	Status  string            `json:"status"`
	Records int               `json:"records_inserted"`
	Results map[string]Result `json:"results"`
}

// Loader reads parquet extracts from the data directory and upserts them
// into the store in batches. A load halts on the first failed batch;
// batches already committed stay committed, which is safe because every
// upsert is idempotent on the table's natural key.
type Loader struct {
	dataDir   string
	teams     *repository.TeamRepository
	schedules *repository.ScheduleRepository
	players   *repository.PlayerRepository
	stats     *repository.StatsRepository
	plays     *repository.PlayRepository
	cache     *cache.Cache
	logger    *log.Logger
}

// NewLoader creates a loader reading extracts from dataDir.
func NewLoader(db *store.Database, c *cache.Cache, dataDir string) *Loader {
	return &Loader{
		dataDir:   dataDir,
		teams:     repository.NewTeamRepository(db),
		schedules: repository.NewScheduleRepository(db),
		players:   repository.NewPlayerRepository(db),
		stats:     repository.NewStatsRepository(db),
		plays:     repository.NewPlayRepository(db),
		cache:     c,
		logger:    log.New(os.Stdout, "[ETL] ", log.LstdFlags),
	}
}

// findSeasonFile locates the extract for a dataset+season. Files follow the
// <dataset>_*<season>*.parquet convention; the first glob match wins.
func (l *Loader) findSeasonFile(dataset string, season int) (string, bool) {
	pattern := filepath.Join(l.dataDir, fmt.Sprintf("%s_*%d*.parquet", dataset, season))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// runLoad is the shared load engine: locate the extract, decode it, and
// upsert in batches until done or the first error.
func runLoad[T any](l *Loader, ctx context.Context, dataset string, season int, upsert func(context.Context, []T) error) Result {
	path, ok := l.findSeasonFile(dataset, season)
	if !ok {
		l.logger.Printf("no %s extract for season %d in %s", dataset, season, l.dataDir)
		return failure(dataset, "source file not found")
	}

	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		l.logger.Printf("failed to read %s: %v", path, err)
		return failure(dataset, fmt.Sprintf("reading %s: %v", filepath.Base(path), err))
	}

	inserted := 0
	for start := 0; start < len(rows); start += BatchSize {
		end := start + BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := upsert(ctx, rows[start:end]); err != nil {
			l.logger.Printf("%s batch at row %d failed: %v", dataset, start, err)
			return failure(dataset, err.Error())
		}
		inserted += end - start
	}

	l.logger.Printf("loaded %d %s rows for season %d from %s", inserted, dataset, season, filepath.Base(path))
	return Result{Dataset: dataset, Status: StatusSuccess, Records: inserted}
}

// invalidate clears cached reads covering the dataset after a successful
// load. Inventory counts change on any load, so that prefix always goes.
func (l *Loader) invalidate(ctx context.Context, res Result, patterns ...string) {
	if res.Status != StatusSuccess || !l.cache.Enabled() {
		return
	}
	for _, pattern := range append(patterns, "inventory:*") {
		if n := l.cache.ClearPattern(ctx, pattern); n > 0 {
			l.logger.Printf("invalidated %d cached entries matching %s", n, pattern)
		}
	}
}

// LoadTeams upserts the static 32-team reference list. It reads no extract
// and must run before any dataset that references team abbreviations.
func (l *Loader) LoadTeams(ctx context.Context) Result {
	if err := l.teams.UpsertBatch(ctx, referenceTeams); err != nil {
		l.logger.Printf("teams load failed: %v", err)
		return failure("teams", err.Error())
	}

	res := Result{Dataset: "teams", Status: StatusSuccess, Records: len(referenceTeams)}
	l.invalidate(ctx, res, "teams:*", "team:*")
	return res
}

// LoadSchedules loads the season's schedule extract.
func (l *Loader) LoadSchedules(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "schedules", season, func(ctx context.Context, batch []scheduleRow) error {
		return l.schedules.UpsertBatch(ctx, convert(batch, scheduleRow.toModel))
	})
	l.invalidate(ctx, res, "schedules:*", "scoreboard:*", "game:*", "seasons:*", "team:*")
	return res
}

// LoadSeasonStats loads weekly team statistics.
func (l *Loader) LoadSeasonStats(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "season_stats", season, func(ctx context.Context, batch []seasonStatRow) error {
		return l.stats.UpsertSeasonStatsBatch(ctx, convert(batch, seasonStatRow.toModel))
	})
	l.invalidate(ctx, res, "team_stats:*", "team:*")
	return res
}

// LoadPowerRatings loads the season's ELO ratings.
func (l *Loader) LoadPowerRatings(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "power_ratings", season, func(ctx context.Context, batch []powerRatingRow) error {
		return l.stats.UpsertPowerRatingsBatch(ctx, convert(batch, powerRatingRow.toModel))
	})
	l.invalidate(ctx, res, "power_ratings:*", "team:*")
	return res
}

// LoadPlayers loads the player roster extract.
func (l *Loader) LoadPlayers(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "players", season, func(ctx context.Context, batch []playerRow) error {
		return l.players.UpsertBatch(ctx, convert(batch, playerRow.toModel))
	})
	l.invalidate(ctx, res, "player:*")
	return res
}

// LoadPlayerStats loads season-level player statistics.
func (l *Loader) LoadPlayerStats(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "player_stats", season, func(ctx context.Context, batch []playerStatRow) error {
		return l.players.UpsertStatsBatch(ctx, convert(batch, playerStatRow.toModel))
	})
	l.invalidate(ctx, res, "player_stats:*")
	return res
}

// LoadInjuries loads weekly injury reports.
func (l *Loader) LoadInjuries(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "injuries", season, func(ctx context.Context, batch []injuryRow) error {
		return l.stats.UpsertInjuriesBatch(ctx, convert(batch, injuryRow.toModel))
	})
	l.invalidate(ctx, res, "injuries:*")
	return res
}

// LoadDepthCharts loads weekly depth charts.
func (l *Loader) LoadDepthCharts(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "depth_charts", season, func(ctx context.Context, batch []depthChartRow) error {
		return l.stats.UpsertDepthChartsBatch(ctx, convert(batch, depthChartRow.toModel))
	})
	l.invalidate(ctx, res, "depth_charts:*")
	return res
}

// LoadPlayByPlay loads the play-by-play extract.
func (l *Loader) LoadPlayByPlay(ctx context.Context, season int) Result {
	res := runLoad(l, ctx, "pbp", season, func(ctx context.Context, batch []playRow) error {
		return l.plays.UpsertBatch(ctx, convert(batch, playRow.toModel))
	})
	l.invalidate(ctx, res, "pbp:*", "game:*")
	return res
}

// LoadAll runs every dataset for a season in dependency order. Teams load
// first; a teams failure halts the run because every other table references
// team abbreviations. Later datasets are independent of each other, so one
// failure does not stop the rest, but it marks the run failed.
func (l *Loader) LoadAll(ctx context.Context, season int) RunSummary {
	summary := RunSummary{Status: StatusSuccess, Results: make(map[string]Result)}

	record := func(res Result) {
		summary.Results[res.Dataset] = res
		summary.Records += res.Records
		if res.Status != StatusSuccess {
			summary.Status = StatusFailed
		}
	}

	teams := l.LoadTeams(ctx)
	record(teams)
	if teams.Status != StatusSuccess {
		return summary
	}

	record(l.LoadSchedules(ctx, season))
	record(l.LoadSeasonStats(ctx, season))
	record(l.LoadPowerRatings(ctx, season))
	record(l.LoadPlayers(ctx, season))
	record(l.LoadPlayerStats(ctx, season))
	record(l.LoadInjuries(ctx, season))
	record(l.LoadDepthCharts(ctx, season))
	record(l.LoadPlayByPlay(ctx, season))

	return summary
}

func convert[R, M any](rows []R, toModel func(R) M) []M {
	models := make([]M, len(rows))
	for i, r := range rows {
		models[i] = toModel(r)
	}
	return models
}
