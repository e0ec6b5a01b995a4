package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/fortuna/gridiron/internal/etl"
)

// Runner maps a job action onto loader calls.
type Runner struct {
	loader *etl.Loader
}

// NewRunner constructs a Runner over the given loader.
func NewRunner(loader *etl.Loader) *Runner {
	return &Runner{loader: loader}
}

// Run executes the action for a season and returns the number of records
// loaded. A failed dataset load is returned as an error carrying the
// loader's reason.
func (r *Runner) Run(ctx context.Context, action string, season int) (int, error) {
	if action == ActionRefreshAll {
		summary := r.loader.LoadAll(ctx, season)
		if summary.Status != etl.StatusSuccess {
			return summary.Records, errors.New(summaryFailures(summary))
		}
		return summary.Records, nil
	}

	var res etl.Result
	switch action {
	case ActionRefreshSeasonStats:
		res = r.loader.LoadSeasonStats(ctx, season)
	case ActionRefreshPowerRatings:
		res = r.loader.LoadPowerRatings(ctx, season)
	case ActionLoadSchedules:
		res = r.loader.LoadSchedules(ctx, season)
	case ActionLoadPlayerStats:
		res = r.loader.LoadPlayerStats(ctx, season)
	case ActionLoadPBP:
		res = r.loader.LoadPlayByPlay(ctx, season)
	case ActionLoadInjuries:
		res = r.loader.LoadInjuries(ctx, season)
	case ActionLoadDepthCharts:
		res = r.loader.LoadDepthCharts(ctx, season)
	default:
		return 0, fmt.Errorf("unknown action %q", action)
	}

	if res.Status != etl.StatusSuccess {
		return res.Records, fmt.Errorf("%s: %s", res.Dataset, res.Reason)
	}
	return res.Records, nil
}

func summaryFailures(summary etl.RunSummary) string {
	msg := "one or more datasets failed:"
	for _, res := range summary.Results {
		if res.Status != etl.StatusSuccess {
			msg += fmt.Sprintf(" %s (%s)", res.Dataset, res.Reason)
		}
	}
	return msg
}
