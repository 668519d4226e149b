package scheduler

import (
	"fmt"
	"sync"
	"time"

	"countdown/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs in a fixed location. Cron computes the next
// activation instant per iteration in that location, so the daily trigger
// tracks local wall-clock time across DST changes.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// NewScheduler creates and starts a cron scheduler in the given location.
func NewScheduler(loc *time.Location, log logger.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(loc))
	c.Start()
	log.Info(fmt.Sprintf("Cron scheduler started in %s.", loc))
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// AddJob adds a new job to the scheduler.
// spec follows the cron format with seconds (e.g., "0 30 9 * * *").
// Returns the EntryID of the added job and an error if any.
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		s.log.Error("Failed to add cron job", err)
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Info(fmt.Sprintf("Added cron job with ID %d, spec: %s", id, spec))
	return id, nil
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Info(fmt.Sprintf("Removed cron job with ID %d", id))
}

// Stop stops the cron scheduler and waits for a running job to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.log.Info("Cron scheduler stopped.")
	}
}

// NextRun returns the next activation instant of the given job, zero if the
// job is unknown. Useful for debugging and startup logging.
func (s *Scheduler) NextRun(id cron.EntryID) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entry(id).Next
}
