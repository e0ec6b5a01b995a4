package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/etl"
	"github.com/fortuna/gridiron/internal/store"
)

// Request represents an admin job submission.
type Request struct {
	Action string
	Season *int
}

// Service coordinates job persistence, execution and status reporting.
// Jobs are claimed one at a time by a single background worker; the claim
// query uses row locking so multiple API replicas sharing a database never
// run the same job twice.
type Service struct {
	repo   *Repository
	runner *Runner

	defaultSeason int
	historyLimit  int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *log.Logger
}

// NewService constructs a Service. Call Start to launch the worker.
func NewService(db *store.Database, c *cache.Cache, dataDir string, defaultSeason int, logger *log.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	if logger == nil {
		logger = log.New(log.Writer(), "[jobs] ", log.LstdFlags)
	}

	return &Service{
		repo:          NewRepository(db),
		runner:        NewRunner(etl.NewLoader(db, c, dataDir)),
		defaultSeason: defaultSeason,
		historyLimit:  10,
		ctx:           ctx,
		cancel:        cancel,
		logger:        logger,
	}
}

// Start launches the background worker loop.
func (s *Service) Start() {
	if err := s.repo.ResetStuckJobs(s.ctx); err != nil {
		s.logger.Printf("failed to reset jobs: %v", err)
	}

	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops the worker and waits for completion.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a queued job from the request.
func (s *Service) Enqueue(ctx context.Context, req Request) (*Job, error) {
	if !ValidAction(req.Action) {
		return nil, fmt.Errorf("unknown action %q", req.Action)
	}

	var season sql.NullInt32
	if req.Season != nil {
		season = sql.NullInt32{Int32: int32(*req.Season), Valid: true}
	}

	return s.repo.CreateJob(ctx, uuid.NewString(), req.Action, season)
}

// GetJob returns one job by ID; store.ErrNotFound when absent.
func (s *Service) GetJob(ctx context.Context, jobID string) (*Job, error) {
	return s.repo.GetJob(ctx, jobID)
}

// History returns the most recently created jobs.
func (s *Service) History(ctx context.Context) ([]*Job, error) {
	return s.repo.ListRecentJobs(ctx, s.historyLimit)
}

func (s *Service) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			job, err := s.repo.MarkNextJobRunning(s.ctx)
			if err != nil {
				s.logger.Printf("claim job error: %v", err)
				time.Sleep(time.Second)
				continue
			}
			if job == nil {
				select {
				case <-s.ctx.Done():
					return
				case <-ticker.C:
					continue
				}
			}

			s.executeJob(job)
		}
	}
}

func (s *Service) executeJob(job *Job) {
	season := s.defaultSeason
	if job.Season.Valid {
		season = int(job.Season.Int32)
	}

	s.logger.Printf("running job %s action=%s season=%d", job.JobID, job.Action, season)

	records, runErr := s.runner.Run(s.ctx, job.Action, season)
	if runErr != nil {
		if err := s.repo.UpdateStatus(s.ctx, job.JobID, StatusFailed, "Job failed", records, runErr); err != nil {
			s.logger.Printf("failed to record failure for job %s: %v", job.JobID, err)
		}
		return
	}

	msg := fmt.Sprintf("Loaded %d records", records)
	if err := s.repo.UpdateStatus(s.ctx, job.JobID, StatusCompleted, msg, records, nil); err != nil {
		s.logger.Printf("failed to record completion for job %s: %v", job.JobID, err)
	}
}
